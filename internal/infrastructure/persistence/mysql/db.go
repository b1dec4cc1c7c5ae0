package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-api/pkg/logger"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. database.auto_migrate开启时自动建表（含唯一索引）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 构建DSN连接字符串
	dsn := cfg.Database.DSN()

	// 2. 配置GORM日志
	logLevel := gormlogger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = gormlogger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	// TranslateError把驱动的1062错误转换为gorm.ErrDuplicatedKey
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	logger.Get().Info().
		Str("host", cfg.Database.Host).
		Str("db", cfg.Database.DBName).
		Msg("数据库连接成功")

	// 6. 自动建表
	if cfg.Database.AutoMigrate {
		if err := autoMigrate(db); err != nil {
			return nil, fmt.Errorf("数据库迁移失败: %w", err)
		}
	}

	return db, nil
}

// Close 关闭底层连接池
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// autoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段和索引，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&BookModel{},
		&CustomerModel{},
	)
}

// BookModel GORM图书模型
// 设计说明:
// 1. ISBN是主键,数据库层保证唯一
// 2. 价格使用DECIMAL(10,2),以文本读写,避免浮点误差
type BookModel struct {
	ISBN        string    `gorm:"primaryKey;size:20;comment:ISBN号"`
	Title       string    `gorm:"size:255;not null;comment:书名"`
	Author      string    `gorm:"size:255;not null;comment:作者"`
	Description string    `gorm:"type:text;not null;comment:图书描述"`
	Genre       string    `gorm:"size:100;not null;comment:类型"`
	Price       string    `gorm:"type:decimal(10,2);not null;comment:价格"`
	Quantity    int       `gorm:"not null;default:0;comment:库存数量"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// CustomerModel GORM客户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/customer/entity.go是领域实体，不依赖GORM
// 3. UserID有唯一索引，并发重复插入由数据库拒绝
type CustomerModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"uniqueIndex;size:255;not null;comment:用户邮箱"`
	Name      string    `gorm:"size:255;not null;comment:姓名"`
	Phone     string    `gorm:"size:50;not null;comment:电话"`
	Address   string    `gorm:"size:255;not null;comment:地址"`
	Address2  *string   `gorm:"size:255;comment:地址2"`
	City      string    `gorm:"size:100;not null;comment:城市"`
	State     string    `gorm:"size:2;not null;comment:州代码"`
	Zipcode   string    `gorm:"size:20;not null;comment:邮编"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CustomerModel) TableName() string {
	return "customers"
}
