package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper" // 导入 Viper
)

// Config 结构体包含所有应用的配置
type Config struct {
	Server        ServerConfig        `mapstructure:"server"` // `mapstructure` 标签用于Viper绑定结构体
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	MinIO         MinIOConfig         `mapstructure:"minio"`
	AliyunOSS     AliyunOSSConfig     `mapstructure:"aliyun_oss"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Storage       StorageConfig       `mapstructure:"storage"`
	Log           LogConfig           `mapstructure:"log"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Report        ReportConfig        `mapstructure:"report"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug / release / test
	// 上传请求体上限 (MB)
	MaxUploadMB int64 `mapstructure:"max_upload_mb"`
}

// DatabaseConfig 数据库配置, driver 支持 mysql 和 postgres
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"`
	DSN          string `mapstructure:"dsn"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// RedisConfig Redis配置
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// 角色缓存有效期
	RoleTTL time.Duration `mapstructure:"role_ttl"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

type AliyunOSSConfig struct {
	Endpoint        string `mapstructure:"endpoint"` // 例如: https://oss-cn-hangzhou.aliyuncs.com
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	SecretKey string        `mapstructure:"secret_key"`
	ExpiresIn time.Duration `mapstructure:"expires_in"`
	Issuer    string        `mapstructure:"issuer"`
}

// StorageConfig 文件存储配置
type StorageConfig struct {
	Type       string `mapstructure:"type"` // minio / aliyun_oss / local
	BucketName string `mapstructure:"bucket_name"`
	// 本地存储根目录, 仅 type=local 时使用
	LocalBasePath string `mapstructure:"local_base_path"`
	// 公开访问地址前缀, 为空时由各存储实现自行拼接
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// zap日志配置
type LogConfig struct {
	OutputPath string `mapstructure:"output_path"`
	ErrorPath  string `mapstructure:"error_path"`
	Level      string `mapstructure:"level"`
}

// ElasticsearchConfig 定义 Elasticsearch 连接配置
type ElasticsearchConfig struct {
	Enabled   bool     `mapstructure:"enabled"`
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	Index     string   `mapstructure:"index"`
}

// ReportConfig 报表配置
type ReportConfig struct {
	PageSize int    `mapstructure:"page_size"`
	Timezone string `mapstructure:"timezone"` // 周图表按该时区划分自然日
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.max_upload_mb", 100)
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.role_ttl", 10*time.Minute)
	v.SetDefault("jwt.expires_in", 12*time.Hour)
	v.SetDefault("jwt.issuer", "go-fileportal")
	v.SetDefault("storage.type", "minio")
	v.SetDefault("storage.bucket_name", "uploads")
	v.SetDefault("storage.local_base_path", "./data/uploads")
	v.SetDefault("log.output_path", "logs/app.log")
	v.SetDefault("log.error_path", "logs/error.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("elasticsearch.index", "file_logs")
	v.SetDefault("report.page_size", 6)
	v.SetDefault("report.timezone", "Asia/Bangkok")
}

// 没有默认值的键需要显式绑定, 否则 Unmarshal 读不到对应的环境变量
var envOnlyKeys = []string{
	"database.dsn",
	"redis.password",
	"minio.endpoint", "minio.access_key_id", "minio.secret_access_key", "minio.use_ssl",
	"aliyun_oss.endpoint", "aliyun_oss.access_key_id", "aliyun_oss.secret_access_key",
	"jwt.secret_key",
	"storage.public_base_url",
	"elasticsearch.enabled", "elasticsearch.addresses", "elasticsearch.username", "elasticsearch.password",
}

func bindEnvs(v *viper.Viper) {
	for _, key := range envOnlyKeys {
		_ = v.BindEnv(key)
	}
}

// LoadConfig 加载配置
// configFile 为空时按默认路径查找 config.yaml
func LoadConfig(configFile string) (*Config, error) {
	// .env 只是可选的补充来源
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, relying on process environment.")
	}

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")              // 配置文件名 (不带扩展名)
		v.SetConfigType("yaml")                // 配置文件类型
		v.AddConfigPath(".")                   // 在当前目录查找配置文件
		v.AddConfigPath("./configs")           // 也可以添加其他路径
		v.AddConfigPath("/etc/go-fileportal/") // 生产环境常见路径
	}

	// 例如：FILEPORTAL_SERVER_PORT 对应 server.port
	v.SetEnvPrefix("FILEPORTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// 配置文件未找到不是致命错误, 依赖环境变量和默认值
		log.Println("Warning: config file not found, using environment variables or default values.")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Println("Configuration loaded successfully with Viper.")
	return cfg, nil
}

// Validate 检查启动所必需的配置项
func (c *Config) Validate() error {
	if c.JWT.SecretKey == "" {
		return errors.New("jwt.secret_key is required")
	}
	switch c.Database.Driver {
	case "mysql", "postgres":
	default:
		return errors.New("database.driver must be mysql or postgres")
	}
	switch c.Storage.Type {
	case "minio", "aliyun_oss", "local":
	default:
		return errors.New("storage.type must be minio, aliyun_oss or local")
	}
	if c.Report.PageSize <= 0 {
		c.Report.PageSize = 6
	}
	return nil
}

// Location 返回报表使用的时区, 解析失败回退到 UTC
func (r ReportConfig) Location() *time.Location {
	if r.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
