package diagram

// Google brand palette used by the GCP landing zone
const (
	gcpOrgColor      = "#4285f4"
	gcpPlatformColor = "#34a853"
	gcpWorkloadColor = "#fbbc04"
	gcpProjectColor  = "#ea4335"
	gcpNetworkColor  = "#9c27b0"
	gcpSecurityColor = "#ff6d01"
	gcpAPIsColor     = "#607d8b"
)

// GCPLandingZone returns the reference GCP landing zone: organization,
// landing zone folder, platform and workload folders with their projects,
// the shared VPC with its subnets, and the security and API annotations.
func GCPLandingZone() *Diagram {
	d := newCanvas("gcp", "GCP Landing Zone Architecture")

	d.Boxes = append(d.Boxes,
		Box{
			Kind: KindOrganization, X: 1, Y: 9.5, Width: 14, Height: 1.2, Pad: 0.1,
			Fill: gcpOrgColor, Edge: black, Alpha: 0.8,
			Label: label(8, 10.1, "GCP Organization", 14, white),
		},
		Box{
			Kind: KindFolder, X: 2, Y: 8, Width: 12, Height: 1, Pad: 0.1,
			Fill: "#e8f0fe", Edge: gcpOrgColor, LineWidth: 2,
			Label: label(8, 8.5, "Landing Zone Folder", 12, ""),
		},
		Box{
			Kind: KindFolder, X: 0.5, Y: 5.5, Width: 7, Height: 2, Pad: 0.1,
			Fill: gcpPlatformColor, Edge: black, Alpha: 0.3,
			Label: label(4, 7.2, "Platform Folder", 12, ""),
		},
		Box{
			Kind: KindFolder, X: 8.5, Y: 5.5, Width: 7, Height: 2, Pad: 0.1,
			Fill: gcpWorkloadColor, Edge: black, Alpha: 0.3,
			Label: label(12, 7.2, "Workloads Folder", 12, ""),
		},
	)

	for _, f := range []struct {
		name string
		x, w float64
		fill string
		edge string
	}{
		{"Networking", 1, 2, "#e8f5e8", gcpPlatformColor},
		{"Shared Services", 3.5, 2, "#e8f5e8", gcpPlatformColor},
		{"Security", 6, 2, "#e8f5e8", gcpPlatformColor},
		{"Production", 9, 2.5, "#fff8e1", gcpWorkloadColor},
		{"Development", 12, 2.5, "#fff8e1", gcpWorkloadColor},
	} {
		d.Boxes = append(d.Boxes, Box{
			Kind: KindSubfolder, X: f.x, Y: 4.8, Width: f.w, Height: 0.6, Pad: 0.05,
			Fill: f.fill, Edge: f.edge,
			Label: label(f.x+f.w/2, 5.1, f.name, 10, ""),
		})
	}

	for _, p := range []struct {
		name string
		x    float64
	}{
		{"Networking\nProject", 1},
		{"Shared Services\nProject", 3.5},
		{"Security\nProject", 6},
		{"Production\nProject", 9},
		{"Development\nProject", 12},
	} {
		d.Boxes = append(d.Boxes, Box{
			Kind: KindProject, X: p.x, Y: 3.8, Width: 2, Height: 0.8, Pad: 0.05,
			Fill: gcpProjectColor, Edge: black, Alpha: 0.7,
			Label: label(p.x+1, 4.2, p.name, 9, white),
		})
	}

	d.Boxes = append(d.Boxes, Box{
		Kind: KindNetwork, X: 1, Y: 2.5, Width: 14, Height: 1, Pad: 0.1,
		Fill: gcpNetworkColor, Edge: black, Alpha: 0.3,
		Label: label(8, 3, "Shared VPC Network (Host Project: Networking)", 12, white),
	})

	for _, s := range []struct {
		name string
		x    float64
	}{
		{"Production\nSubnet\n10.0.1.0/24", 2},
		{"Development\nSubnet\n10.0.2.0/24", 6},
		{"Shared Services\nSubnet\n10.0.3.0/24", 10},
		{"Router & NAT\nGateway", 13.5},
	} {
		d.Boxes = append(d.Boxes, Box{
			Kind: KindSubnet, X: s.x, Y: 1.5, Width: 2.3, Height: 0.8, Pad: 0.05,
			Fill: "#f3e5f5", Edge: gcpNetworkColor,
			Label: label(s.x+1.15, 1.9, s.name, 8, ""),
		})
	}

	d.Boxes = append(d.Boxes,
		Box{
			Kind: KindAnnotation, X: 0.5, Y: 0.2, Width: 7, Height: 0.8, Pad: 0.05,
			Fill: gcpSecurityColor, Edge: black, Alpha: 0.3,
			Label: label(4, 0.6, "Security & Compliance:\n• Organization Policies • Cloud KMS • Logging & Monitoring", 9, white),
		},
		Box{
			Kind: KindAnnotation, X: 8.5, Y: 0.2, Width: 7, Height: 0.8, Pad: 0.05,
			Fill: gcpAPIsColor, Edge: black, Alpha: 0.3,
			Label: label(12, 0.6, "Enabled APIs:\n• Compute • Logging • Monitoring • Cloud KMS", 9, white),
		},
	)

	d.Connectors = lines(
		// landing zone folder to platform and workloads
		seg(8, 8, 4, 7.5),
		seg(8, 8, 12, 7.5),

		// folders to sub-folders
		seg(4, 6.8, 2, 5.4),
		seg(4, 6.8, 4.5, 5.4),
		seg(4, 6.8, 7, 5.4),
		seg(12, 6.8, 10.25, 5.4),
		seg(12, 6.8, 13.25, 5.4),

		// sub-folders to projects
		seg(2, 4.8, 2, 4.6),
		seg(4.5, 4.8, 4.5, 4.6),
		seg(7, 4.8, 7, 4.6),
		seg(10.25, 4.8, 10, 4.6),
		seg(13.25, 4.8, 13, 4.6),

		// networking project to the shared VPC
		seg(2, 3.8, 2, 3.5),
	)

	d.Legend.Entries = []LegendEntry{
		{Color: gcpOrgColor, Label: "Organization Level"},
		{Color: gcpPlatformColor, Alpha: 0.3, Label: "Platform Resources"},
		{Color: gcpWorkloadColor, Alpha: 0.3, Label: "Workload Resources"},
		{Color: gcpProjectColor, Alpha: 0.7, Label: "GCP Projects"},
		{Color: gcpNetworkColor, Alpha: 0.3, Label: "Networking"},
		{Color: gcpSecurityColor, Alpha: 0.3, Label: "Security & Compliance"},
	}

	return d
}
