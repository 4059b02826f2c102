package constants

// Event bus topics
const (
	TopicUserLoggedIn  = "user.logged_in"
	TopicUserLoggedOut = "user.logged_out"
)

// Redis cache keys
const (
	CacheKeyTripSearch = "viebus:trips:search"
	CacheKeyRoutes     = "viebus:routes"
)
