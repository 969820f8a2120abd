package govsa

// AlcatelVendorDefinition defines the Alcatel access-node vendor and its
// subscriber provisioning attributes
var AlcatelVendorDefinition = &VendorDefinition{
	ID:          3041,
	Name:        "Alcatel",
	Description: "Alcatel access node subscriber attributes",
	Attributes: []*AttributeDefinition{
		{ID: 5, Name: "Alcatel-Access-Type", DataType: DataTypeInteger},
		{ID: 9, Name: "Alcatel-Primary-DNS", DataType: DataTypeIPAddr},
		{ID: 10, Name: "Alcatel-Secondary-DNS", DataType: DataTypeIPAddr},
		{ID: 11, Name: "Alcatel-Primary-NBNS", DataType: DataTypeIPAddr},
		{ID: 12, Name: "Alcatel-Secondary-NBNS", DataType: DataTypeIPAddr},
		{ID: 13, Name: "Alcatel-IPv6-Primary-DNS", DataType: DataTypeIPv6Addr},
		{ID: 14, Name: "Alcatel-IPv6-Secondary-DNS", DataType: DataTypeIPv6Addr},
		{ID: 20, Name: "Alcatel-Service-Profile", DataType: DataTypeString},
		{ID: 21, Name: "Alcatel-Session-Timeout-Date", DataType: DataTypeDate},
	},
}
