package config

// COSConfig 腾讯云 COS 对象存储配置，帖子附件的字节内容存放于此
type COSConfig struct {
	SecretID   string `mapstructure:"secretId" json:"-" yaml:"secretId"`
	SecretKey  string `mapstructure:"secretKey" json:"-" yaml:"secretKey"`
	BucketName string `mapstructure:"bucketName" json:"bucketName" yaml:"bucketName"`
	AppID      string `mapstructure:"appId" json:"appId" yaml:"appId"`
	Region     string `mapstructure:"region" json:"region" yaml:"region"`

	// BaseURL 对象公开访问的基础 URL（CDN 或自定义域名），为空时使用存储桶默认域名
	BaseURL string `mapstructure:"baseUrl" json:"baseUrl" yaml:"baseUrl"`
}

// UploadConfig 附件上传限制
type UploadConfig struct {
	// MaxSizeBytes 单个附件的大小上限（字节），默认 5MiB，超过则拒绝上传
	MaxSizeBytes int64 `mapstructure:"maxSizeBytes" json:"maxSizeBytes" yaml:"maxSizeBytes"`
}
