package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de persistencia soportados para usuarios y productos.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
// Se construye una sola vez en main y se pasa a cada servicio.
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Store  StoreConfig
	Mongo  MongoConfig
	DB     DBConfig
	JWT    JWTConfig
	Tasks  TasksConfig
	Static StaticConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig selecciona el almacén de usuarios y productos.
type StoreConfig struct {
	Driver string // mongo, postgres, memory
}

// MongoConfig configuración del almacén documental.
type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// DBConfig configuración de PostgreSQL (solo con DB_DRIVER=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de los tokens de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// TasksConfig ubicación del archivo plano de tareas.
type TasksConfig struct {
	FilePath string
}

// StaticConfig archivos del frontend.
type StaticConfig struct {
	PublicDir string
	LoginPage string
	DocsPath  string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	secret := getString(v, "SECRET_KEY", "")
	if secret == "" {
		secret = getString(v, "JWT_SECRET", "tesla_default_secret")
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-tareas"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "PORT", 3000),
			CORSOrigins: getString(v, "CORS_ORIGINS", "*"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getString(v, "DB_DRIVER", DriverMongo)),
		},
		Mongo: MongoConfig{
			URI:      getString(v, "MONGO_URI", "mongodb://localhost:27017"),
			Database: getString(v, "MONGO_DATABASE", "inventario"),
			Timeout:  time.Duration(getInt(v, "MONGO_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventario"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     secret,
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 120),
			Issuer:     getString(v, "JWT_ISSUER", "inventario-tareas"),
		},
		Tasks: TasksConfig{
			FilePath: getString(v, "TAREAS_FILE", "data/tareas.json"),
		},
		Static: StaticConfig{
			PublicDir: getString(v, "PUBLIC_DIR", "public"),
			LoginPage: getString(v, "LOGIN_PAGE", "/login.html"),
			DocsPath:  getString(v, "DOCS_PATH", "./docs/swagger.json"),
		},
	}

	switch cfg.Store.Driver {
	case DriverMongo, DriverPostgres, DriverMemory:
	default:
		return nil, fmt.Errorf("config: DB_DRIVER desconocido %q", cfg.Store.Driver)
	}
	if cfg.JWT.Expiration <= 0 {
		return nil, fmt.Errorf("config: JWT_EXPIRATION_MINUTES debe ser positivo")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
