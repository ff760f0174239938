package validation

// ShopBody is the accepted shape of a create body.
var ShopBody = Schema{
	{Name: "title", Type: String, Rules: "required"},
	{Name: "description", Type: String, Optional: true},
	{Name: "price", Type: Number},
}

// ShopIDParam is the accepted shape of the :id path parameter. Every storage
// backend assigns UUID identifiers; hex digits may be either case.
var ShopIDParam = Schema{
	{Name: "id", Type: String, Rules: "uuid_any"},
}
