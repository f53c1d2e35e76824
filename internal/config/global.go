package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"permission-engine/internal/utils/runtime"
)

const (
	kafkaHostFlag    = "kafka-host"
	kafkaPortFlag    = "kafka-port"
	mongoDBURIFlag   = "mongodb-uri"
	redisAddressFlag = "redis-address"
	developmentFlag  = "development"
)

type Config struct {
	Kafka   KafkaConfig
	MongoDB MongoDBConfig
	Redis   RedisConfig

	Development bool
}

type KafkaConfig struct {
	Host string
	Port int
}

type MongoDBConfig struct {
	URI string
}

type RedisConfig struct {
	// Address is host:port. Empty disables the result cache.
	Address string
}

func LoadGlobalConfig() Config {
	viper.SetDefault(kafkaHostFlag, "localhost")
	viper.SetDefault(kafkaPortFlag, 9092)
	viper.SetDefault(mongoDBURIFlag, "mongodb://localhost:27017")
	viper.SetDefault(redisAddressFlag, "")
	viper.SetDefault(developmentFlag, true)

	pflag.String(kafkaHostFlag, viper.GetString(kafkaHostFlag), "Kafka host")
	pflag.Int32(kafkaPortFlag, viper.GetInt32(kafkaPortFlag), "Kafka port")
	pflag.String(mongoDBURIFlag, viper.GetString(mongoDBURIFlag), "MongoDB URI")
	pflag.String(redisAddressFlag, viper.GetString(redisAddressFlag), "Redis address (empty disables the result cache)")
	pflag.Bool(developmentFlag, viper.GetBool(developmentFlag), "Development mode")
	pflag.Parse()

	// Bind the viper flags to environment variables
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	runtime.Must(viper.BindEnv(kafkaHostFlag))
	runtime.Must(viper.BindEnv(kafkaPortFlag))
	runtime.Must(viper.BindEnv(mongoDBURIFlag))
	runtime.Must(viper.BindEnv(redisAddressFlag))
	runtime.Must(viper.BindEnv(developmentFlag))

	return Config{
		Kafka: KafkaConfig{
			Host: viper.GetString(kafkaHostFlag),
			Port: int(viper.GetInt32(kafkaPortFlag)),
		},
		MongoDB: MongoDBConfig{
			URI: viper.GetString(mongoDBURIFlag),
		},
		Redis: RedisConfig{
			Address: viper.GetString(redisAddressFlag),
		},
		Development: viper.GetBool(developmentFlag),
	}
}
