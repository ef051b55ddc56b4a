package provider

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/ankek/terraform-provider-landingzone/internal/diagram"
)

// Ensure LandingZoneProvider satisfies various provider interfaces.
var _ provider.Provider = &LandingZoneProvider{}

// LandingZoneProvider defines the provider implementation.
type LandingZoneProvider struct {
	// version is set to the provider version on release, "dev" when the
	// provider is built and ran locally, and "test" when running acceptance
	// testing.
	version string
}

// LandingZoneProviderModel describes the provider data model.
type LandingZoneProviderModel struct {
	DefaultCloud types.String `tfsdk:"default_cloud"`
}

// ProviderData is handed to resources and data sources on Configure.
type ProviderData struct {
	DefaultCloud string
}

// providerDataFrom unwraps the value passed to resource and data source
// Configure. It is nil before the provider itself is configured.
func providerDataFrom(data any, diags *diag.Diagnostics) *ProviderData {
	if data == nil {
		return nil
	}

	providerData, ok := data.(*ProviderData)
	if !ok {
		diags.AddError(
			"Unexpected Provider Data Type",
			fmt.Sprintf("Expected *provider.ProviderData, got: %T. Please report this issue to the provider developers.", data),
		)
		return nil
	}

	return providerData
}

func (p *LandingZoneProvider) Metadata(ctx context.Context, req provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "landingzone"
	resp.Version = p.version
}

func (p *LandingZoneProvider) Schema(ctx context.Context, req provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = schema.Schema{
		Description: "The Landing Zone provider renders landing zone architecture diagrams (organization, folders, projects, networks) for GCP, AWS and Azure.",
		Attributes: map[string]schema.Attribute{
			"default_cloud": schema.StringAttribute{
				Description: "Catalog used when a resource or data source does not set cloud. Defaults to gcp.",
				Optional:    true,
				Validators: []validator.String{
					stringvalidator.OneOf(diagram.Names()...),
				},
			},
		},
	}
}

func (p *LandingZoneProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	var data LandingZoneProviderModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)

	if resp.Diagnostics.HasError() {
		return
	}

	providerData := &ProviderData{DefaultCloud: diagram.DefaultCatalog}
	if !data.DefaultCloud.IsNull() && !data.DefaultCloud.IsUnknown() && data.DefaultCloud.ValueString() != "" {
		providerData.DefaultCloud = data.DefaultCloud.ValueString()
	}

	tflog.Debug(ctx, "configured landingzone provider", map[string]interface{}{
		"default_cloud": providerData.DefaultCloud,
	})

	resp.DataSourceData = providerData
	resp.ResourceData = providerData
}

func (p *LandingZoneProvider) Resources(ctx context.Context) []func() resource.Resource {
	return []func() resource.Resource{
		NewDiagramResource,
	}
}

func (p *LandingZoneProvider) DataSources(ctx context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		NewCatalogDataSource,
	}
}

func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &LandingZoneProvider{
			version: version,
		}
	}
}
