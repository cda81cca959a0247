package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for limits.
type Config struct {
    Env             string // application environment (e.g. "dev", "prod")
    Port            string // HTTP port to listen on
    DBUser          string // database username
    DBPass          string // database password (optional)
    DBHost          string // database host address
    DBPort          string // database port number
    DBName          string // database name
    KakaoRESTKey    string // Kakao REST API key for place search (optional; absence is reported per request)
    PlaceSearchSize int    // default number of place-search candidates to request
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  The Kakao key is
// deliberately not required at startup: the place-search endpoint reports a
// configuration-missing condition per request instead, so the rest of the
// service stays usable without it.
func Load() Config {
    size := 5 // Kakao default page size used by the service
    if s := os.Getenv("PLACE_SEARCH_SIZE"); s != "" {
        if n, err := strconv.Atoi(s); err == nil && n > 0 {
            size = n
        }
    }
    return Config{
        Env:             must("APP_ENV"),                 // environment (dev/test/prod)
        Port:            must("APP_PORT"),                // port to bind the HTTP server
        DBUser:          must("DB_USER"),                 // database user
        DBPass:          os.Getenv("DB_PASS"),            // database password (empty allowed)
        DBHost:          must("DB_HOST"),                 // database host
        DBPort:          must("DB_PORT"),                 // database port
        DBName:          must("DB_NAME"),                 // database name
        KakaoRESTKey:    os.Getenv("KAKAO_REST_API_KEY"), // place-search credential (empty allowed)
        PlaceSearchSize: size,                            // candidate count per search
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}
