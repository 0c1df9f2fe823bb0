package config

// JWTConfig 签发/校验访问令牌所需的配置
type JWTConfig struct {
	// SecretKey HS256 共享密钥，必填；泄露等同于全量会话失窃，只允许通过配置注入
	SecretKey string `mapstructure:"secretKey" json:"-" yaml:"secretKey"`

	// Issuer 写入令牌 iss 声明的签发方标识
	Issuer string `mapstructure:"issuer" json:"issuer" yaml:"issuer"`

	// ExpireMinutes 访问令牌有效期（分钟），绝对过期时间 = 签发时间 + 有效期
	ExpireMinutes int `mapstructure:"expireMinutes" json:"expireMinutes" yaml:"expireMinutes"`
}
