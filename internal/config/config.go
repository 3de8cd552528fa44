package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Engine knobs that used to be inline literals
// (block booker sentinels, default people count, default parking price,
// room fulfillment mode) are explicit configuration here.
type Config struct {
    Env            string // application environment (e.g. "dev", "prod")
    Port           string // HTTP port to listen on
    DBUser         string // database username
    DBPass         string // database password (optional)
    DBHost         string // database host address
    DBPort         string // database port number
    DBName         string // database name
    JWTSecret      string // secret used to sign JWTs
    AccessTTLMin   int    // access token time-to-live in minutes
    RefreshTTLDays int    // refresh token time-to-live in days
    BcryptCost     int    // bcrypt cost for password hashing

    TempBlockClientID      uint64 // booker sentinel tagged on temp blocks
    PermanentBlockClientID uint64 // booker sentinel tagged on permanent blocks
    DefaultPeopleCount     int    // people count applied when a request passes zero
    DefaultParkingPrice    int    // nightly parking price applied when none is given
    RoomAllocationMode     string // BEST_EFFORT or ALL_OR_NOTHING
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message; engine knobs fall
// back to documented defaults.
func Load() Config {
    return Config{
        Env:            must("APP_ENV"),
        Port:           must("APP_PORT"),
        DBUser:         must("DB_USER"),
        DBPass:         os.Getenv("DB_PASS"), // empty allowed
        DBHost:         must("DB_HOST"),
        DBPort:         must("DB_PORT"),
        DBName:         must("DB_NAME"),
        JWTSecret:      must("JWT_SECRET"),
        AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),
        RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"),
        BcryptCost:     mustInt("BCRYPT_COST"),

        TempBlockClientID:      optUint64("BLOCK_TEMP_CLIENT_ID", 1),
        PermanentBlockClientID: optUint64("BLOCK_PERMANENT_CLIENT_ID", 2),
        DefaultPeopleCount:     optInt("DEFAULT_PEOPLE_COUNT", 1),
        DefaultParkingPrice:    optInt("DEFAULT_PARKING_UNIT_PRICE", 0),
        RoomAllocationMode:     optStr("ROOM_ALLOCATION_MODE", "BEST_EFFORT"),
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

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

func optStr(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func optInt(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    n, err := strconv.Atoi(v)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, v)
    }
    return n
}

func optUint64(key string, def uint64) uint64 {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    n, err := strconv.ParseUint(v, 10, 64)
    if err != nil {
        log.Fatalf("invalid id for %s: %q", key, v)
    }
    return n
}
