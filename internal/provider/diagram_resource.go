package provider

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/hashicorp/terraform-plugin-framework-validators/int64validator"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/int64default"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/ankek/terraform-provider-landingzone/internal/config"
	"github.com/ankek/terraform-provider-landingzone/internal/diagram"
	"github.com/ankek/terraform-provider-landingzone/internal/generator"
	"github.com/ankek/terraform-provider-landingzone/internal/interfaces"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ resource.Resource = &DiagramResource{}
var _ resource.ResourceWithConfigure = &DiagramResource{}
var _ resource.ResourceWithImportState = &DiagramResource{}

func NewDiagramResource() resource.Resource {
	return &DiagramResource{
		generator:    generator.New(),
		defaultCloud: diagram.DefaultCatalog,
	}
}

// DiagramResource defines the resource implementation.
type DiagramResource struct {
	generator    interfaces.DiagramGenerator
	defaultCloud string
}

// DiagramResourceModel describes the resource data model.
type DiagramResourceModel struct {
	ID             types.String `tfsdk:"id"`
	OutputPath     types.String `tfsdk:"output_path"`
	Cloud          types.String `tfsdk:"cloud"`
	DPI            types.Int64  `tfsdk:"dpi"`
	Title          types.String `tfsdk:"title"`
	BoxCount       types.Int64  `tfsdk:"box_count"`
	ConnectorCount types.Int64  `tfsdk:"connector_count"`
	SHA256         types.String `tfsdk:"sha256"`
}

func (r *DiagramResource) Metadata(ctx context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_diagram"
}

func (r *DiagramResource) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Renders a landing zone architecture diagram (organization, folders, projects, shared network and subnets) to a PNG or JPEG file.",

		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Resource identifier, the output path",
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.UseStateForUnknown(),
				},
			},
			"output_path": schema.StringAttribute{
				MarkdownDescription: "Path where the diagram will be saved. The directory must exist. A `.jpg` or `.jpeg` extension selects JPEG, anything else PNG.",
				Required:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"cloud": schema.StringAttribute{
				MarkdownDescription: "Landing zone catalog: `gcp`, `aws` or `azure`. Defaults to the provider's `default_cloud`, then `gcp`.",
				Optional:            true,
				Computed:            true,
				Validators: []validator.String{
					stringvalidator.OneOf(diagram.Names()...),
				},
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.UseStateForUnknown(),
				},
			},
			"dpi": schema.Int64Attribute{
				MarkdownDescription: "Output resolution in dots per inch. Default is 300.",
				Optional:            true,
				Computed:            true,
				Default:             int64default.StaticInt64(int64(config.DefaultDPI)),
				Validators: []validator.Int64{
					int64validator.Between(int64(config.MinDPI), int64(config.MaxDPI)),
				},
			},
			"title": schema.StringAttribute{
				MarkdownDescription: "Overrides the catalog title drawn at the top of the diagram.",
				Optional:            true,
			},
			"box_count": schema.Int64Attribute{
				MarkdownDescription: "Number of boxes drawn.",
				Computed:            true,
			},
			"connector_count": schema.Int64Attribute{
				MarkdownDescription: "Number of connector lines drawn.",
				Computed:            true,
			},
			"sha256": schema.StringAttribute{
				MarkdownDescription: "Hex SHA-256 digest of the written file.",
				Computed:            true,
			},
		},
	}
}

func (r *DiagramResource) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	providerData := providerDataFrom(req.ProviderData, &resp.Diagnostics)
	if providerData == nil {
		return
	}
	r.defaultCloud = providerData.DefaultCloud
}

func (r *DiagramResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	var data DiagramResourceModel

	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resp.Diagnostics.Append(r.render(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *DiagramResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var data DiagramResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	// A removed file drops the resource, a rewritten one shows as drift
	_, digest, err := generator.FileDigest(data.OutputPath.ValueString())
	if errors.Is(err, fs.ErrNotExist) {
		tflog.Info(ctx, "diagram file removed outside of terraform", map[string]interface{}{
			"output_path": data.OutputPath.ValueString(),
		})
		resp.State.RemoveResource(ctx)
		return
	}
	if err != nil {
		resp.Diagnostics.AddError(
			"Failed to read diagram",
			err.Error(),
		)
		return
	}
	data.SHA256 = types.StringValue(digest)

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *DiagramResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	var data DiagramResourceModel

	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resp.Diagnostics.Append(r.render(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *DiagramResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var data DiagramResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	err := os.Remove(data.OutputPath.ValueString())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		resp.Diagnostics.AddError("Failed to remove diagram", err.Error())
	}
}

func (r *DiagramResource) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	resource.ImportStatePassthroughID(ctx, path.Root("id"), req, resp)
	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("output_path"), req.ID)...)
}

// render generates the diagram described by data and fills in the
// computed attributes
func (r *DiagramResource) render(ctx context.Context, data *DiagramResourceModel) diag.Diagnostics {
	var diags diag.Diagnostics

	cloud := r.defaultCloud
	if !data.Cloud.IsNull() && !data.Cloud.IsUnknown() && data.Cloud.ValueString() != "" {
		cloud = data.Cloud.ValueString()
	}

	dpi := int64(config.DefaultDPI)
	if !data.DPI.IsNull() && !data.DPI.IsUnknown() {
		dpi = data.DPI.ValueInt64()
	}

	tflog.Debug(ctx, "rendering landing zone diagram", map[string]interface{}{
		"cloud":       cloud,
		"output_path": data.OutputPath.ValueString(),
		"dpi":         dpi,
	})

	result, err := r.generator.Generate(ctx, interfaces.DiagramConfig{
		Cloud:      cloud,
		OutputPath: data.OutputPath.ValueString(),
		DPI:        float64(dpi),
		Title:      data.Title.ValueString(),
	})
	if err != nil {
		diags.AddError("Failed to render diagram", err.Error())
		return diags
	}

	tflog.Trace(ctx, "rendered landing zone diagram", map[string]interface{}{
		"sha256": result.SHA256,
		"bytes":  result.FileSize,
	})

	data.ID = types.StringValue(result.OutputPath)
	data.Cloud = types.StringValue(result.Cloud)
	data.DPI = types.Int64Value(dpi)
	data.BoxCount = types.Int64Value(result.BoxCount)
	data.ConnectorCount = types.Int64Value(result.ConnectorCount)
	data.SHA256 = types.StringValue(result.SHA256)

	return diags
}
