package contextkeys

// Custom type avoids collisions with other context keys.
type contextKey string

// DBContextKey is the key under which *gorm.DB travels in the context.
const DBContextKey = contextKey("db")
