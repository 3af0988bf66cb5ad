package records

import (
	"fmt"

	"github.com/bdlm/log"

	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

func order(id, client, product string, amount float64, status, date string) types.Record {
	return types.Record{
		"id": id, "client": client, "product": product,
		"amount": amount, "status": status, "date": date,
	}
}

func user(id float64, name, email, plan, status, date string) types.Record {
	return types.Record{
		"id": id, "name": name, "email": email,
		"plan": plan, "status": status, "date": date,
	}
}

// DemoOrders returns the demo orders dataset, newest first.
func DemoOrders() []types.Record {
	return []types.Record{
		order("#1234", "Marie Dupont", "Dashboard Pro", 149, "completed", "2024-01-15"),
		order("#1233", "Jean Martin", "Dashboard Starter", 49, "completed", "2024-01-15"),
		order("#1232", "Sophie Bernard", "Dashboard Business", 249, "processing", "2024-01-14"),
		order("#1231", "Pierre Dubois", "Dashboard Pro", 149, "completed", "2024-01-14"),
		order("#1230", "Claire Moreau", "Dashboard Starter", 49, "pending", "2024-01-13"),
		order("#1229", "Lucas Petit", "Dashboard Business", 249, "completed", "2024-01-13"),
		order("#1228", "Emma Laurent", "Dashboard Pro", 149, "cancelled", "2024-01-12"),
		order("#1227", "Hugo Roux", "Dashboard Starter", 49, "completed", "2024-01-12"),
		order("#1226", "Léa Simon", "Dashboard Pro", 149, "completed", "2024-01-11"),
		order("#1225", "Nathan Michel", "Dashboard Business", 249, "processing", "2024-01-11"),
		order("#1224", "Chloé Garcia", "Dashboard Starter", 49, "completed", "2024-01-10"),
		order("#1223", "Théo Martinez", "Dashboard Pro", 149, "completed", "2024-01-10"),
		order("#1222", "Camille Lopez", "Dashboard Business", 249, "pending", "2024-01-09"),
		order("#1221", "Maxime Thomas", "Dashboard Starter", 49, "completed", "2024-01-09"),
		order("#1220", "Manon Robert", "Dashboard Pro", 149, "completed", "2024-01-08"),
	}
}

// DemoUsers returns the demo users dataset, newest first.
func DemoUsers() []types.Record {
	return []types.Record{
		user(1, "Marie Dupont", "marie.dupont@email.com", "business", "active", "2024-01-15"),
		user(2, "Jean Martin", "jean.martin@email.com", "pro", "active", "2024-01-14"),
		user(3, "Sophie Bernard", "sophie.b@email.com", "starter", "pending", "2024-01-14"),
		user(4, "Pierre Dubois", "p.dubois@email.com", "pro", "active", "2024-01-13"),
		user(5, "Claire Moreau", "claire.m@email.com", "business", "active", "2024-01-13"),
		user(6, "Lucas Petit", "lucas.petit@email.com", "starter", "active", "2024-01-12"),
		user(7, "Emma Laurent", "emma.l@email.com", "pro", "pending", "2024-01-12"),
		user(8, "Hugo Roux", "hugo.roux@email.com", "business", "active", "2024-01-11"),
		user(9, "Léa Simon", "lea.simon@email.com", "starter", "active", "2024-01-11"),
		user(10, "Nathan Michel", "n.michel@email.com", "pro", "active", "2024-01-10"),
	}
}

// DemoProducts returns the product catalogue with its sales figures.
func DemoProducts() []types.Record {
	return []types.Record{
		{"id": "dashboard-business", "name": "Dashboard Business", "icon": "📊", "price": 249.0, "sales": 124.0, "amount": 30876.0},
		{"id": "dashboard-pro", "name": "Dashboard Pro", "icon": "📈", "price": 149.0, "sales": 256.0, "amount": 38144.0},
		{"id": "dashboard-starter", "name": "Dashboard Starter", "icon": "🚀", "price": 49.0, "sales": 389.0, "amount": 19061.0},
	}
}

// DemoNotifications returns the initial notifications panel content.
func DemoNotifications() []types.Record {
	return []types.Record{
		{"id": 1.0, "type": "order", "icon": "✓", "text": "Nouvelle commande #1234 de Marie Dupont pour 149€", "time": "Il y a 2 min", "unread": true},
		{"id": 2.0, "type": "user", "icon": "👤", "text": "Nouvel utilisateur Jean Martin vient de s'inscrire", "time": "Il y a 15 min", "unread": true},
		{"id": 3.0, "type": "alert", "icon": "⚠️", "text": "Stock faible Dashboard Business (3 restants)", "time": "Il y a 1h", "unread": true},
		{"id": 4.0, "type": "review", "icon": "⭐", "text": "Nouvel avis 5 étoiles \"Excellent produit, très pro !\"", "time": "Il y a 2h", "unread": true},
		{"id": 5.0, "type": "info", "icon": "📊", "text": "Rapport hebdomadaire prêt à être consulté", "time": "Il y a 3h", "unread": false},
	}
}

// demoData maps each standard collection to its demo dataset.
var demoData = map[string]func() []types.Record{
	types.OrdersCollection:        DemoOrders,
	types.UsersCollection:         DemoUsers,
	types.ProductsCollection:      DemoProducts,
	types.NotificationsCollection: DemoNotifications,
}

// Seed writes the demo dataset into every empty collection and default
// settings when none are stored. With force, existing collections are
// replaced. Returns the names of the collections written.
func Seed(store types.RecordStore, force bool) ([]string, error) {
	var seeded []string
	for _, name := range types.StandardCollections {
		existing, err := store.Load(name)
		if err != nil {
			return seeded, fmt.Errorf("loading %s: %w", name, err)
		}
		if len(existing) > 0 && !force {
			continue
		}
		if err := store.Save(name, demoData[name]()); err != nil {
			return seeded, fmt.Errorf("seeding %s: %w", name, err)
		}
		seeded = append(seeded, name)
	}

	stored, err := store.Load(types.SettingsCollection)
	if err != nil {
		return seeded, fmt.Errorf("loading settings: %w", err)
	}
	if len(stored) == 0 || force {
		if err := SaveSettings(store, types.DefaultSettings()); err != nil {
			return seeded, err
		}
		seeded = append(seeded, types.SettingsCollection)
	}

	log.WithFields(log.Fields{"collections": seeded, "force": force}).Info("demo data seeded")
	return seeded, nil
}
