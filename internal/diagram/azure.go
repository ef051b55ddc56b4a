package diagram

const (
	azureRootColor         = "#0078d4"
	azurePlatformColor     = "#107c10"
	azureLandingZonesColor = "#ffb900"
	azureSandboxColor      = "#8a8886"
	azureRGColor           = "#d13438"
	azureNetworkColor      = "#5c2d91"
	azureSecurityColor     = "#ff8c00"
)

// AzureLandingZone returns the enterprise-scale Azure landing zone:
// management group hierarchy, resource groups, hub and spoke virtual
// networks with their subnets, and the security and monitoring services.
func AzureLandingZone() *Diagram {
	d := newCanvas("azure", "Azure Landing Zone Architecture")

	d.Boxes = append(d.Boxes,
		Box{
			Kind: KindOrganization, X: 1, Y: 9.5, Width: 14, Height: 1.2, Pad: 0.1,
			Fill: azureRootColor, Edge: black, Alpha: 0.8,
			Label: label(8, 10.1, "Tenant Root Management Group", 14, white),
		},
		Box{
			Kind: KindFolder, X: 2, Y: 8, Width: 12, Height: 1, Pad: 0.1,
			Fill: "#deecf9", Edge: azureRootColor, LineWidth: 2,
			Label: label(8, 8.5, "Organization Root Management Group", 12, ""),
		},
		Box{
			Kind: KindFolder, X: 0.5, Y: 5.5, Width: 7, Height: 2, Pad: 0.1,
			Fill: azurePlatformColor, Edge: black, Alpha: 0.3,
			Label: label(4, 7.2, "Platform", 12, ""),
		},
		Box{
			Kind: KindFolder, X: 8.5, Y: 5.5, Width: 4.6, Height: 2, Pad: 0.1,
			Fill: azureLandingZonesColor, Edge: black, Alpha: 0.3,
			Label: label(10.8, 7.2, "Landing Zones", 12, ""),
		},
		Box{
			Kind: KindFolder, X: 13.4, Y: 5.5, Width: 2.1, Height: 2, Pad: 0.1,
			Fill: azureSandboxColor, Edge: black, Alpha: 0.3,
			Label: label(14.45, 7.2, "Sandbox", 12, ""),
		},
		Box{
			Kind: KindSubfolder, X: 9, Y: 4.8, Width: 2, Height: 0.6, Pad: 0.05,
			Fill: "#fff8e1", Edge: azureLandingZonesColor,
			Label: label(10, 5.1, "Corp", 10, ""),
		},
		Box{
			Kind: KindSubfolder, X: 11.3, Y: 4.8, Width: 2, Height: 0.6, Pad: 0.05,
			Fill: "#fff8e1", Edge: azureLandingZonesColor,
			Label: label(12.3, 5.1, "Online", 10, ""),
		},
	)

	for _, rg := range []struct {
		name string
		x    float64
	}{
		{"Connectivity\nResource Group", 1},
		{"Management\nResource Group", 3.5},
		{"Identity\nResource Group", 6},
		{"Production\nResource Group", 9},
		{"Development\nResource Group", 11.3},
	} {
		d.Boxes = append(d.Boxes, Box{
			Kind: KindProject, X: rg.x, Y: 3.8, Width: 2, Height: 0.8, Pad: 0.05,
			Fill: azureRGColor, Edge: black, Alpha: 0.7,
			Label: label(rg.x+1, 4.2, rg.name, 9, white),
		})
	}

	for _, vnet := range []struct {
		name string
		x, w float64
	}{
		{"Hub VNet 10.0.0.0/16", 1, 6.5},
		{"Prod Spoke VNet\n10.1.0.0/16", 8.5, 3.4},
		{"Dev Spoke VNet\n10.2.0.0/16", 12.1, 3.4},
	} {
		d.Boxes = append(d.Boxes, Box{
			Kind: KindNetwork, X: vnet.x, Y: 2.5, Width: vnet.w, Height: 1, Pad: 0.1,
			Fill: azureNetworkColor, Edge: black, Alpha: 0.3,
			Label: label(vnet.x+vnet.w/2, 3, vnet.name, 11, white),
		})
	}

	for _, s := range []struct {
		name string
		x    float64
	}{
		{"GatewaySubnet\n10.0.1.0/24", 1.2},
		{"AzureFirewallSubnet\n10.0.2.0/24", 4},
		{"workloads\n10.1.1.0/24", 9},
		{"workloads\n10.2.1.0/24", 12.6},
	} {
		d.Boxes = append(d.Boxes, Box{
			Kind: KindSubnet, X: s.x, Y: 1.5, Width: 2.3, Height: 0.8, Pad: 0.05,
			Fill: "#efe6f7", Edge: azureNetworkColor,
			Label: label(s.x+1.15, 1.9, s.name, 8, ""),
		})
	}

	d.Boxes = append(d.Boxes,
		Box{
			Kind: KindAnnotation, X: 0.5, Y: 0.2, Width: 7, Height: 0.8, Pad: 0.05,
			Fill: azureSecurityColor, Edge: black, Alpha: 0.3,
			Label: label(4, 0.6, "Security & Compliance:\n• Azure Policy • Defender for Cloud • Key Vault • Azure Firewall", 9, white),
		},
		Box{
			Kind: KindAnnotation, X: 8.5, Y: 0.2, Width: 7, Height: 0.8, Pad: 0.05,
			Fill: "#607d8b", Edge: black, Alpha: 0.3,
			Label: label(12, 0.6, "Monitoring:\n• Log Analytics • Application Insights • Metric Alerts", 9, white),
		},
	)

	d.Connectors = lines(
		// organization root to the child management groups
		seg(8, 8, 4, 7.5),
		seg(8, 8, 10.8, 7.5),
		seg(8, 8, 14.45, 7.5),

		// landing zones to corp and online
		seg(10.8, 6.8, 10, 5.4),
		seg(10.8, 6.8, 12.3, 5.4),

		// platform to its resource groups
		seg(4, 6.8, 2, 4.6),
		seg(4, 6.8, 4.5, 4.6),
		seg(4, 6.8, 7, 4.6),

		// corp and online to the workload resource groups
		seg(10, 4.8, 10, 4.6),
		seg(12.3, 4.8, 12.3, 4.6),

		// resource groups to the networks they own
		seg(2, 3.8, 2, 3.5),
		seg(10, 3.8, 10, 3.5),
		seg(12.3, 3.8, 12.3, 3.5),

		// hub to prod spoke peering
		seg(7.5, 3, 8.5, 3),
	)

	d.Legend.Entries = []LegendEntry{
		{Color: azureRootColor, Label: "Management Groups"},
		{Color: azurePlatformColor, Alpha: 0.3, Label: "Platform"},
		{Color: azureLandingZonesColor, Alpha: 0.3, Label: "Landing Zones"},
		{Color: azureRGColor, Alpha: 0.7, Label: "Resource Groups"},
		{Color: azureNetworkColor, Alpha: 0.3, Label: "Networking"},
		{Color: azureSecurityColor, Alpha: 0.3, Label: "Security & Compliance"},
	}

	return d
}
