// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/living-cost/pkg/output"
)

// FindGroup finds a group by name in a region listing.
// Returns a pointer to the group if found, nil otherwise.
func FindGroup(view output.RegionsView, name string) *output.GroupView {
	for i := range view.Groups {
		if view.Groups[i].Name == name {
			return &view.Groups[i]
		}
	}
	return nil
}

// FindRegion finds a region by name across all groups of a listing.
func FindRegion(view output.RegionsView, name string) *output.RegionView {
	for i := range view.Groups {
		for j := range view.Groups[i].Regions {
			if view.Groups[i].Regions[j].Name == name {
				return &view.Groups[i].Regions[j]
			}
		}
	}
	return nil
}
