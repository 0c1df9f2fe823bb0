package config

import "github.com/Xushengqwer/go-common/config"

type BlogConfig struct {
	ZapConfig     config.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig config.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig  config.ServerConfig  `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig  config.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	MySQLConfig   MySQLConfig          `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	JWTConfig     JWTConfig            `mapstructure:"jwtConfig" json:"jwtConfig" yaml:"jwtConfig"`
	COSConfig     COSConfig            `mapstructure:"attachmentsCosConfig" json:"attachmentsCosConfig" yaml:"attachmentsCosConfig"`
	UploadConfig  UploadConfig         `mapstructure:"uploadConfig" json:"uploadConfig" yaml:"uploadConfig"`
}
