package provider

import (
	"context"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/tfsdk"
	"github.com/hashicorp/terraform-plugin-go/tftypes"
)

func readCatalog(t *testing.T, d datasource.DataSource, cloud tftypes.Value) (*datasource.ReadResponse, CatalogDataSourceModel) {
	t.Helper()
	ctx := context.Background()

	schemaResp := &datasource.SchemaResponse{}
	d.Schema(ctx, datasource.SchemaRequest{}, schemaResp)
	s := schemaResp.Schema
	typ := s.Type().TerraformType(ctx)

	resp := &datasource.ReadResponse{
		State: tfsdk.State{Schema: s, Raw: tftypes.NewValue(typ, nil)},
	}
	d.Read(ctx, datasource.ReadRequest{
		Config: tfsdk.Config{Schema: s, Raw: objectValue(typ, map[string]tftypes.Value{"cloud": cloud})},
	}, resp)

	var data CatalogDataSourceModel
	if !resp.Diagnostics.HasError() {
		resp.Diagnostics.Append(resp.State.Get(ctx, &data)...)
	}
	return resp, data
}

func TestCatalogDataSource_Read(t *testing.T) {
	tests := []struct {
		name           string
		cloud          tftypes.Value
		wantCloud      string
		wantBoxes      int64
		wantConnectors int64
		wantFirst      string
	}{
		{
			name:           "gcp",
			cloud:          tftypes.NewValue(tftypes.String, "gcp"),
			wantCloud:      "gcp",
			wantBoxes:      21,
			wantConnectors: 13,
			wantFirst:      "Organization Level",
		},
		{
			name:           "default",
			cloud:          tftypes.NewValue(tftypes.String, nil),
			wantCloud:      "gcp",
			wantBoxes:      21,
			wantConnectors: 13,
			wantFirst:      "Organization Level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, data := readCatalog(t, NewCatalogDataSource(), tt.cloud)
			if resp.Diagnostics.HasError() {
				t.Fatalf("Read() diagnostics: %v", resp.Diagnostics)
			}

			if data.Cloud.ValueString() != tt.wantCloud {
				t.Errorf("Expected cloud '%s', got '%s'", tt.wantCloud, data.Cloud.ValueString())
			}
			if data.ID.ValueString() != tt.wantCloud {
				t.Errorf("Expected id '%s', got '%s'", tt.wantCloud, data.ID.ValueString())
			}
			if data.BoxCount.ValueInt64() != tt.wantBoxes {
				t.Errorf("Expected box_count %d, got %d", tt.wantBoxes, data.BoxCount.ValueInt64())
			}
			if data.ConnectorCount.ValueInt64() != tt.wantConnectors {
				t.Errorf("Expected connector_count %d, got %d", tt.wantConnectors, data.ConnectorCount.ValueInt64())
			}

			var labels []string
			resp.Diagnostics.Append(data.LegendLabels.ElementsAs(context.Background(), &labels, false)...)
			if resp.Diagnostics.HasError() {
				t.Fatalf("legend_labels: %v", resp.Diagnostics)
			}
			if len(labels) != 6 || labels[0] != tt.wantFirst {
				t.Errorf("Unexpected legend labels: %v", labels)
			}
			if data.Title.ValueString() == "" {
				t.Error("Expected a title")
			}
		})
	}
}

func TestCatalogDataSource_ProviderDefault(t *testing.T) {
	d := &CatalogDataSource{}

	configureResp := &datasource.ConfigureResponse{}
	d.Configure(context.Background(), datasource.ConfigureRequest{
		ProviderData: &ProviderData{DefaultCloud: "aws"},
	}, configureResp)
	if configureResp.Diagnostics.HasError() {
		t.Fatalf("Configure() diagnostics: %v", configureResp.Diagnostics)
	}

	resp, data := readCatalog(t, d, tftypes.NewValue(tftypes.String, nil))
	if resp.Diagnostics.HasError() {
		t.Fatalf("Read() diagnostics: %v", resp.Diagnostics)
	}
	if data.Cloud.ValueString() != "aws" {
		t.Errorf("Expected cloud 'aws', got '%s'", data.Cloud.ValueString())
	}
}

func TestCatalogDataSource_Unknown(t *testing.T) {
	resp, _ := readCatalog(t, NewCatalogDataSource(), tftypes.NewValue(tftypes.String, "oracle"))
	if !resp.Diagnostics.HasError() {
		t.Error("Expected an error for an unknown catalog")
	}
}
