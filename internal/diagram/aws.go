package diagram

const (
	awsOrgColor        = "#232f3e"
	awsSecurityOUColor = "#dd344c"
	awsInfraOUColor    = "#01a88d"
	awsWorkloadOUColor = "#ff9900"
	awsAccountColor    = "#527fff"
	awsNetworkColor    = "#8c4fff"
	awsControlColor    = "#7aa116"
	awsMonitoringColor = "#e7157b"
)

// AWSLandingZone returns the Control Tower landing zone: organizational
// units with their member accounts, the guardrail controls, the shared VPC
// owned by the networking account and the security and monitoring services.
func AWSLandingZone() *Diagram {
	d := newCanvas("aws", "AWS Landing Zone Architecture")

	d.Boxes = append(d.Boxes,
		Box{
			Kind: KindOrganization, X: 1, Y: 9.5, Width: 14, Height: 1.2, Pad: 0.1,
			Fill: awsOrgColor, Edge: black, Alpha: 0.8,
			Label: label(8, 10.1, "AWS Organization (Management Account)", 14, white),
		},
		Box{
			Kind: KindFolder, X: 2, Y: 8, Width: 12, Height: 1, Pad: 0.1,
			Fill: "#fff4e5", Edge: awsWorkloadOUColor, LineWidth: 2,
			Label: label(8, 8.5, "Control Tower Landing Zone", 12, ""),
		},
	)

	for _, ou := range []struct {
		name string
		x    float64
		fill string
	}{
		{"Security OU", 0.5, awsSecurityOUColor},
		{"Infrastructure OU", 5.7, awsInfraOUColor},
		{"Workloads OU", 10.9, awsWorkloadOUColor},
	} {
		d.Boxes = append(d.Boxes, Box{
			Kind: KindFolder, X: ou.x, Y: 5.5, Width: 4.6, Height: 2, Pad: 0.1,
			Fill: ou.fill, Edge: black, Alpha: 0.3,
			Label: label(ou.x+2.3, 7.2, ou.name, 12, ""),
		})
	}

	for _, acct := range []struct {
		name string
		x    float64
	}{
		{"Log Archive\nAccount", 0.7},
		{"Audit / Security\nAccount", 2.9},
		{"Networking\nAccount", 5.9},
		{"Shared Services\nAccount", 8.1},
		{"Production\nAccount", 11.1},
		{"Development\nAccount", 13.3},
	} {
		d.Boxes = append(d.Boxes, Box{
			Kind: KindProject, X: acct.x, Y: 5.8, Width: 2, Height: 0.8, Pad: 0.05,
			Fill: awsAccountColor, Edge: black, Alpha: 0.7,
			Label: label(acct.x+1, 6.2, acct.name, 9, white),
		})
	}

	// the gap between x=6.2 and x=9.8 carries the account-to-VPC lines
	for _, ctl := range []struct {
		name string
		x    float64
	}{
		{"Region Deny", 0.6},
		{"S3 Encryption", 3.6},
		{"No Root Access Keys", 9.8},
		{"MFA Enabled", 12.8},
	} {
		d.Boxes = append(d.Boxes, Box{
			Kind: KindAnnotation, X: ctl.x, Y: 4.2, Width: 2.6, Height: 0.6, Pad: 0.05,
			Fill: "#eef6e0", Edge: awsControlColor,
			Label: label(ctl.x+1.3, 4.5, ctl.name, 9, ""),
		})
	}

	d.Boxes = append(d.Boxes, Box{
		Kind: KindNetwork, X: 1, Y: 2.5, Width: 14, Height: 1, Pad: 0.1,
		Fill: awsNetworkColor, Edge: black, Alpha: 0.3,
		Label: label(8, 3, "Shared VPC 10.0.0.0/16 (Networking Account, shared via RAM)", 12, white),
	})

	for _, s := range []struct {
		name string
		x    float64
	}{
		{"Public Subnets\n/24 per AZ", 2},
		{"Private Subnets\n/24 per AZ", 6},
		{"Security Groups\nProd & Dev", 10},
		{"NAT Gateway\n(one per AZ)", 13.5},
	} {
		d.Boxes = append(d.Boxes, Box{
			Kind: KindSubnet, X: s.x, Y: 1.5, Width: 2.3, Height: 0.8, Pad: 0.05,
			Fill: "#f1eaff", Edge: awsNetworkColor,
			Label: label(s.x+1.15, 1.9, s.name, 8, ""),
		})
	}

	d.Boxes = append(d.Boxes,
		Box{
			Kind: KindAnnotation, X: 0.5, Y: 0.2, Width: 7, Height: 0.8, Pad: 0.05,
			Fill: awsSecurityOUColor, Edge: black, Alpha: 0.3,
			Label: label(4, 0.6, "Security & Compliance:\n• GuardDuty • Security Hub • AWS Config Rules • CloudTrail", 9, white),
		},
		Box{
			Kind: KindAnnotation, X: 8.5, Y: 0.2, Width: 7, Height: 0.8, Pad: 0.05,
			Fill: awsMonitoringColor, Edge: black, Alpha: 0.3,
			Label: label(12, 0.6, "Monitoring:\n• CloudWatch Dashboard • Metric Alarms • SNS Alerts", 9, white),
		},
	)

	d.Connectors = lines(
		// landing zone to the organizational units
		seg(8, 8, 2.8, 7.5),
		seg(8, 8, 8, 7.5),
		seg(8, 8, 13.2, 7.5),

		// networking and shared services accounts to the shared VPC
		seg(6.9, 5.8, 6.9, 3.5),
		seg(9.1, 5.8, 9.1, 3.5),
	)

	d.Legend.Entries = []LegendEntry{
		{Color: awsOrgColor, Label: "Organization Level"},
		{Color: awsSecurityOUColor, Alpha: 0.3, Label: "Security OU"},
		{Color: awsInfraOUColor, Alpha: 0.3, Label: "Infrastructure OU"},
		{Color: awsWorkloadOUColor, Alpha: 0.3, Label: "Workloads OU"},
		{Color: awsAccountColor, Alpha: 0.7, Label: "AWS Accounts"},
		{Color: awsNetworkColor, Alpha: 0.3, Label: "Networking"},
		{Color: awsControlColor, Label: "Control Tower Controls"},
	}

	return d
}
