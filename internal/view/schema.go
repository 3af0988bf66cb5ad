package view

import "github.com/olirobz31/dashboard-analytics-pro/pkg/types"

// Column describes one exported column: its header and how a record renders
// into it.
type Column struct {
	Header string
	Render func(types.Record) string
}

// Schema tells the engine how to search, sort, and export one collection.
type Schema struct {
	// Name is the collection the schema describes.
	Name string

	// Search lists the text extracted from a record for substring search.
	Search []func(types.Record) string

	// Sortable maps each sortable field to whether it compares numerically.
	// Fields not listed here cannot be sorted on.
	Sortable map[string]bool

	// Columns are the CSV export columns, in order.
	Columns []Column
}

func field(name string) func(types.Record) string {
	return func(r types.Record) string { return r.Str(name) }
}

// OrdersSchema searches id, client, product, and the status label (not the
// raw status code), and exports the fixed orders CSV layout.
var OrdersSchema = Schema{
	Name: types.OrdersCollection,
	Search: []func(types.Record) string{
		field(types.FieldID),
		field(types.FieldClient),
		field(types.FieldProduct),
		func(r types.Record) string { return types.OrderStatusLabel(r.Str(types.FieldStatus)) },
	},
	Sortable: map[string]bool{
		types.FieldID:      false,
		types.FieldClient:  false,
		types.FieldProduct: false,
		types.FieldAmount:  true,
		types.FieldStatus:  false,
		types.FieldDate:    false,
	},
	Columns: []Column{
		{"ID", field(types.FieldID)},
		{"Client", field(types.FieldClient)},
		{"Produit", field(types.FieldProduct)},
		{"Montant", func(r types.Record) string { return FormatAmount(r[types.FieldAmount]) }},
		{"Statut", func(r types.Record) string { return types.OrderStatusLabel(r.Str(types.FieldStatus)) }},
		{"Date", func(r types.Record) string { return FormatDate(r.Str(types.FieldDate)) }},
	},
}

// UsersSchema drives the users table.
var UsersSchema = Schema{
	Name: types.UsersCollection,
	Search: []func(types.Record) string{
		field(types.FieldName),
		field(types.FieldEmail),
		field(types.FieldPlan),
		func(r types.Record) string { return types.UserStatusLabel(r.Str(types.FieldStatus)) },
	},
	Sortable: map[string]bool{
		types.FieldID:     true,
		types.FieldName:   false,
		types.FieldEmail:  false,
		types.FieldPlan:   false,
		types.FieldStatus: false,
		types.FieldDate:   false,
	},
	Columns: []Column{
		{"ID", field(types.FieldID)},
		{"Utilisateur", field(types.FieldName)},
		{"Email", field(types.FieldEmail)},
		{"Plan", field(types.FieldPlan)},
		{"Statut", func(r types.Record) string { return types.UserStatusLabel(r.Str(types.FieldStatus)) }},
		{"Inscrit le", func(r types.Record) string { return FormatDate(r.Str(types.FieldDate)) }},
	},
}

// ProductsSchema drives the products table.
var ProductsSchema = Schema{
	Name: types.ProductsCollection,
	Search: []func(types.Record) string{
		field(types.FieldName),
	},
	Sortable: map[string]bool{
		types.FieldName:   false,
		types.FieldPrice:  true,
		types.FieldSales:  true,
		types.FieldAmount: true,
	},
	Columns: []Column{
		{"ID", field(types.FieldID)},
		{"Produit", field(types.FieldName)},
		{"Prix", func(r types.Record) string { return FormatAmount(r[types.FieldPrice]) }},
		{"Ventes", field(types.FieldSales)},
		{"Montant", func(r types.Record) string { return FormatAmount(r[types.FieldAmount]) }},
	},
}

// NotificationsSchema drives the notifications list.
var NotificationsSchema = Schema{
	Name: types.NotificationsCollection,
	Search: []func(types.Record) string{
		field("text"),
		field("type"),
	},
	Sortable: map[string]bool{
		types.FieldID: true,
		"type":        false,
	},
	Columns: []Column{
		{"ID", field(types.FieldID)},
		{"Type", field("type")},
		{"Message", field("text")},
		{"Quand", field("time")},
	},
}

// SchemaFor returns the schema of a standard collection.
func SchemaFor(collection string) (Schema, bool) {
	switch collection {
	case types.OrdersCollection:
		return OrdersSchema, true
	case types.UsersCollection:
		return UsersSchema, true
	case types.ProductsCollection:
		return ProductsSchema, true
	case types.NotificationsCollection:
		return NotificationsSchema, true
	}
	return Schema{}, false
}
