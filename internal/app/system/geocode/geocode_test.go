package geocode_test

import (
	"context"
	"testing"

	"github.com/givehubapp/givehub/internal/app/system/geocode"
)

func TestDisabled_NeverResolves(t *testing.T) {
	var g geocode.Geocoder = geocode.Disabled{}

	res, err := g.ResolveAddress(context.Background(), "123 Main St, Columbia, MO")
	if err != nil {
		t.Fatalf("ResolveAddress: %v", err)
	}
	if res.OK {
		t.Error("Disabled geocoder should never report OK")
	}

	res, err = g.ResolvePlaceLocation(context.Background(), "ChIJd8BlQ2BZwokRAFUEcm_qrcA")
	if err != nil {
		t.Fatalf("ResolvePlaceLocation: %v", err)
	}
	if res.OK {
		t.Error("Disabled geocoder should never report OK")
	}
}

func TestResultZeroValue(t *testing.T) {
	// The zero Result means "unresolved": handlers rely on OK being false.
	var r geocode.Result
	if r.OK {
		t.Error("zero Result must not be OK")
	}
}
