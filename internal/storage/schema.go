package storage

import "context"

type relation struct {
	name     string
	sqlite   string
	postgres string
}

// Relations in creation order; each one only references relations above it.
var relations = []relation{
	{
		name: "users",
		sqlite: `CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			password TEXT NOT NULL
		)`,
		postgres: `CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL,
			password TEXT NOT NULL
		)`,
	},
	{
		name: "restaurants",
		sqlite: `CREATE TABLE IF NOT EXISTS restaurants (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL
		)`,
		postgres: `CREATE TABLE IF NOT EXISTS restaurants (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL
		)`,
	},
	{
		name: "dishes",
		sqlite: `CREATE TABLE IF NOT EXISTS dishes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			price REAL NOT NULL
		)`,
		postgres: `CREATE TABLE IF NOT EXISTS dishes (
			id BIGSERIAL PRIMARY KEY,
			restaurant_id BIGINT NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL
		)`,
	},
	{
		name: "orders",
		sqlite: `CREATE TABLE IF NOT EXISTS orders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users(id),
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			address TEXT NOT NULL,
			comment TEXT NOT NULL,
			payment TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'new',
			total_price REAL NOT NULL
		)`,
		postgres: `CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			restaurant_id BIGINT NOT NULL REFERENCES restaurants(id),
			address TEXT NOT NULL,
			comment TEXT NOT NULL,
			payment TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'new',
			total_price DOUBLE PRECISION NOT NULL
		)`,
	},
	{
		name: "order_items",
		sqlite: `CREATE TABLE IF NOT EXISTS order_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			order_id INTEGER NOT NULL REFERENCES orders(id),
			dish_id INTEGER NOT NULL REFERENCES dishes(id),
			quantity INTEGER NOT NULL,
			price REAL NOT NULL
		)`,
		postgres: `CREATE TABLE IF NOT EXISTS order_items (
			id BIGSERIAL PRIMARY KEY,
			order_id BIGINT NOT NULL REFERENCES orders(id),
			dish_id BIGINT NOT NULL REFERENCES dishes(id),
			quantity INTEGER NOT NULL,
			price DOUBLE PRECISION NOT NULL
		)`,
	},
}

// RelationNames lists the relations EnsureSchema provisions.
func RelationNames() []string {
	names := make([]string, 0, len(relations))
	for _, rel := range relations {
		names = append(names, rel.name)
	}
	return names
}

// EnsureSchema creates any missing relation. Existing relations and their
// rows are left untouched, so it is safe to call on every start.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, rel := range relations {
		stmt := rel.sqlite
		if s.driver == DriverPostgres {
			stmt = rel.postgres
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return &SchemaError{Relation: rel.name, Err: err}
		}
	}
	return nil
}
