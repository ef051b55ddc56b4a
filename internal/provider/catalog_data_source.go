package provider

import (
	"context"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/ankek/terraform-provider-landingzone/internal/diagram"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ datasource.DataSource = &CatalogDataSource{}
var _ datasource.DataSourceWithConfigure = &CatalogDataSource{}

// CatalogDataSource exposes a compiled-in catalog without rendering it.
type CatalogDataSource struct {
	defaultCloud string
}

func NewCatalogDataSource() datasource.DataSource {
	return &CatalogDataSource{
		defaultCloud: diagram.DefaultCatalog,
	}
}

// CatalogDataSourceModel describes the data source data model.
type CatalogDataSourceModel struct {
	ID             types.String `tfsdk:"id"`
	Cloud          types.String `tfsdk:"cloud"`
	Title          types.String `tfsdk:"title"`
	BoxCount       types.Int64  `tfsdk:"box_count"`
	ConnectorCount types.Int64  `tfsdk:"connector_count"`
	LegendLabels   types.List   `tfsdk:"legend_labels"`
}

func (d *CatalogDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_catalog"
}

func (d *CatalogDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Describes a landing zone catalog: its title, how many boxes and connectors it draws, and its legend.",

		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Data source identifier, the catalog name",
			},
			"cloud": schema.StringAttribute{
				MarkdownDescription: "Catalog name: `gcp`, `aws` or `azure`. Defaults to the provider's `default_cloud`.",
				Optional:            true,
				Computed:            true,
				Validators: []validator.String{
					stringvalidator.OneOf(diagram.Names()...),
				},
			},
			"title": schema.StringAttribute{
				MarkdownDescription: "Title drawn at the top of the diagram.",
				Computed:            true,
			},
			"box_count": schema.Int64Attribute{
				MarkdownDescription: "Number of boxes in the catalog.",
				Computed:            true,
			},
			"connector_count": schema.Int64Attribute{
				MarkdownDescription: "Number of connector lines in the catalog.",
				Computed:            true,
			},
			"legend_labels": schema.ListAttribute{
				MarkdownDescription: "Legend labels in drawing order.",
				ElementType:         types.StringType,
				Computed:            true,
			},
		},
	}
}

func (d *CatalogDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	providerData := providerDataFrom(req.ProviderData, &resp.Diagnostics)
	if providerData == nil {
		return
	}
	d.defaultCloud = providerData.DefaultCloud
}

func (d *CatalogDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data CatalogDataSourceModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	cloud := d.defaultCloud
	if !data.Cloud.IsNull() && data.Cloud.ValueString() != "" {
		cloud = data.Cloud.ValueString()
	}

	catalog, err := diagram.Lookup(cloud)
	if err != nil {
		resp.Diagnostics.AddError("Unknown catalog", err.Error())
		return
	}

	labels := make([]string, 0, len(catalog.Legend.Entries))
	for _, entry := range catalog.Legend.Entries {
		labels = append(labels, entry.Label)
	}

	legendLabels, diags := types.ListValueFrom(ctx, types.StringType, labels)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Debug(ctx, "read landing zone catalog", map[string]interface{}{
		"cloud": catalog.Name,
		"boxes": len(catalog.Boxes),
	})

	data.ID = types.StringValue(catalog.Name)
	data.Cloud = types.StringValue(catalog.Name)
	data.Title = types.StringValue(catalog.Title.Content)
	data.BoxCount = types.Int64Value(int64(len(catalog.Boxes)))
	data.ConnectorCount = types.Int64Value(int64(len(catalog.Connectors)))
	data.LegendLabels = legendLabels

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}
