package main

import (
	"context"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/provider"

	lzprovider "github.com/ankek/terraform-provider-landingzone/internal/provider"
)

func TestVersion(t *testing.T) {
	// Test that version variable exists and has a default value
	if version == "" {
		t.Error("version should not be empty")
	}

	// Default version should be "dev"
	if version != "dev" {
		t.Logf("version = %s (expected 'dev' but may be set by build)", version)
	}
}

func TestProviderFactory(t *testing.T) {
	p := lzprovider.New(version)()

	resp := &provider.MetadataResponse{}
	p.Metadata(context.Background(), provider.MetadataRequest{}, resp)

	if resp.TypeName != "landingzone" {
		t.Errorf("Expected provider type 'landingzone', got '%s'", resp.TypeName)
	}
	if resp.Version != version {
		t.Errorf("Expected version '%s', got '%s'", version, resp.Version)
	}
}
