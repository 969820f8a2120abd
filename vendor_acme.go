package govsa

// AcmeVendorDefinition defines the Acme Packet (Oracle SBC) vendor and its
// session/SIP accounting attributes
var AcmeVendorDefinition = &VendorDefinition{
	ID:          9148,
	Name:        "Acme",
	Description: "Acme Packet session border controller attributes",
	Attributes: []*AttributeDefinition{
		{ID: 3, Name: "Acme-Session-Ingress-CallId", DataType: DataTypeString},
		{ID: 4, Name: "Acme-Session-Egress-CallId", DataType: DataTypeString},
		{ID: 10, Name: "Acme-Ingress-Remote-Addr", DataType: DataTypeIPAddr},
		{ID: 11, Name: "Acme-Ingress-Local-Addr", DataType: DataTypeIPAddr},
		{ID: 12, Name: "Acme-Egress-Remote-Addr", DataType: DataTypeIPAddr},
		{ID: 13, Name: "Acme-Egress-Local-Addr", DataType: DataTypeIPAddr},
		{ID: 43, Name: "Acme-Session-Protocol-Type", DataType: DataTypeString},
		{ID: 50, Name: "Acme-SIP-Status", DataType: DataTypeInteger},
		{ID: 54, Name: "Acme-Session-Charging-Vector", DataType: DataTypeString},
		{
			ID:       60,
			Name:     "Acme-Session-Disposition",
			DataType: DataTypeInteger,
			Values: map[string]uint32{
				"Unknown-Disposition": 0,
				"Call-Attempt":        1,
				"Ringing":             2,
				"Answered":            3,
			},
		},
		{
			ID:       61,
			Name:     "Acme-Disconnect-Initiator",
			DataType: DataTypeInteger,
			Values: map[string]uint32{
				"Unknown-Disconnect":  0,
				"Calling-Party":       1,
				"Called-Party":        2,
				"Internal-Disconnect": 3,
			},
		},
		{ID: 62, Name: "Acme-Disconnect-Cause", DataType: DataTypeInteger},
		{ID: 70, Name: "Acme-Custom-VSA", DataType: DataTypeOctets},
	},
}
