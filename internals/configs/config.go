package configs

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET não configurado")

// Config concentra toda a configuração do processo. Carregada uma única
// vez no main e injetada nos construtores, sem globals ambientes.
type Config struct {
	Port string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	JWTSecret string
	JWTTTL    time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	UploadDir string
}

// =======================
// ENV LOADER
// =======================
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Nenhum arquivo .env encontrado, usando ENV do sistema")
	} else {
		log.Println("✅ Arquivo .env carregado!")
	}

	cfg := &Config{
		Port:         GetEnv("PORT", "3000"),
		DBUser:       GetEnv("DB_USER"),
		DBPassword:   GetEnv("DB_PASSWORD"),
		DBHost:       GetEnv("DB_HOST"),
		DBPort:       GetEnv("DB_PORT", "5432"),
		DBName:       GetEnv("DB_NAME"),
		DBSSLMode:    GetEnv("DB_SSLMODE", "require"),
		JWTSecret:    GetEnv("JWT_SECRET"),
		JWTTTL:       time.Hour,
		SMTPHost:     GetEnv("SMTP_HOST"),
		SMTPPort:     GetEnv("SMTP_PORT", "587"),
		SMTPUser:     GetEnv("SMTP_USER"),
		SMTPPassword: GetEnv("SMTP_PASSWORD"),
		MailFrom:     GetEnv("MAIL_FROM"),
		UploadDir:    GetEnv("UPLOAD_DIR", "./uploads"),
	}

	if cfg.JWTSecret == "" {
		log.Println("❌ JWT_SECRET não configurado!")
		return nil, ErrMissingJWTSecret
	}

	if !cfg.MailEnabled() {
		// Sem SMTP só o fluxo de recuperação de senha fica degradado.
		log.Println("⚠️ Credenciais SMTP ausentes — envio de e-mail desabilitado")
	}

	return cfg, nil
}

// MailEnabled indica se há credenciais suficientes para enviar e-mail.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.MailFrom != ""
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
