package cfg

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/jimlawless/whereami"
)

type Config struct {
	Http    *HTTPConfig
	Redis   *RedisCfg // nil — хранилище в памяти (демо-режим)
	Kafka   *KafkaCfg // nil — публикация событий заказов отключена
	Gemini  *GeminiCfg
	Latency *LatencyCfg
	Prefs   *PreferencesCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
}

type KafkaCfg struct {
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
}

type GeminiCfg struct {
	APIKey  string // Пустой ключ — клиент не делает запросов
	Model   string
	BaseURL string
	Timeout time.Duration
}

// LatencyCfg — имитация сетевых задержек сервисов.
// В тестах все значения обнуляются.
type LatencyCfg struct {
	ProductList  time.Duration
	OrderCreate  time.Duration
	SupplierSync time.Duration
	JitterFactor float64
}

// PreferencesCfg — значения предпочтений по умолчанию при первом запуске.
// DefaultTheme играет роль системного предпочтения светлой/тёмной темы.
type PreferencesCfg struct {
	DefaultTheme    string
	DefaultLanguage string
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	latency, err := loadLatencyCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:    http,
		Redis:   redis,
		Kafka:   kafka,
		Gemini:  loadGeminiCfg(),
		Latency: latency,
		Prefs:   loadPreferencesCfg(),
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

// loadRedisCfg возвращает nil без ошибки, если REDIS_ADDR не задан:
// приложение работает с хранилищем в памяти.
func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
	)

	addr := getEnv("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}

	dbStr := getEnvOrDefault("REDIS_DB_ID", strconv.Itoa(defaultDB))
	db, err := strconv.Atoi(dbStr)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        addr,
		Password:    getEnv("REDIS_PASSWORD"),
		User:        getEnv("REDIS_USER"),
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
	}, nil
}

// loadKafkaCfg возвращает nil без ошибки, если KAFKA_BROKERS не задан:
// события заказов в этом случае не публикуются.
func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultTopic             = "dropflow.orders"
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
	)

	brokerStr := os.Getenv("KAFKA_BROKERS")
	if brokerStr == "" {
		return nil, nil
	}
	brokers := strings.Split(brokerStr, ",")

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	return &KafkaCfg{
		Brokers:           brokers,
		Topic:             getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
	}, nil
}

func loadGeminiCfg() *GeminiCfg {
	const (
		defaultModel   = "gemini-2.5-flash"
		defaultBaseURL = "https://generativelanguage.googleapis.com"
		defaultTimeout = 15 * time.Second
	)

	timeout, err := parseDurationEnv("GEMINI_TIMEOUT", defaultTimeout)
	if err != nil {
		timeout = defaultTimeout
	}

	return &GeminiCfg{
		APIKey:  getEnv("GEMINI_API_KEY"),
		Model:   getEnvOrDefault("GEMINI_MODEL", defaultModel),
		BaseURL: getEnvOrDefault("GEMINI_BASE_URL", defaultBaseURL),
		Timeout: timeout,
	}
}

func loadLatencyCfg(log logger.Logger) (*LatencyCfg, error) {
	const (
		defaultProductList  = 500 * time.Millisecond
		defaultOrderCreate  = 800 * time.Millisecond
		defaultSupplierSync = 1500 * time.Millisecond
		defaultJitterFactor = 0.2
	)

	productList, err := parseDurationEnv("PRODUCT_LIST_LATENCY", defaultProductList)
	if err != nil {
		log.Errorf(err, "invalid PRODUCT_LIST_LATENCY")
		return nil, err
	}

	orderCreate, err := parseDurationEnv("ORDER_CREATE_LATENCY", defaultOrderCreate)
	if err != nil {
		log.Errorf(err, "invalid ORDER_CREATE_LATENCY")
		return nil, err
	}

	supplierSync, err := parseDurationEnv("SUPPLIER_SYNC_LATENCY", defaultSupplierSync)
	if err != nil {
		log.Errorf(err, "invalid SUPPLIER_SYNC_LATENCY")
		return nil, err
	}

	jitterStr := getEnvOrDefault("LATENCY_JITTER", strconv.FormatFloat(defaultJitterFactor, 'f', -1, 64))
	jitterFactor, err := strconv.ParseFloat(jitterStr, 64)
	if err != nil {
		log.Errorf(err, "invalid LATENCY_JITTER")
		return nil, err
	}

	return &LatencyCfg{
		ProductList:  productList,
		OrderCreate:  orderCreate,
		SupplierSync: supplierSync,
		JitterFactor: jitterFactor,
	}, nil
}

func loadPreferencesCfg() *PreferencesCfg {
	const (
		defaultTheme    = "light"
		defaultLanguage = "en"
	)

	return &PreferencesCfg{
		DefaultTheme:    getEnvOrDefault("DEFAULT_THEME", defaultTheme),
		DefaultLanguage: getEnvOrDefault("DEFAULT_LANGUAGE", defaultLanguage),
	}
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
