package constant

// COS 对象键相关常量
const (
	// COSObjectKeyPrefixAttachments 帖子附件在 COS 中的对象键前缀。
	// 完整对象键形如: blog/attachments/20250901/<uuid>.pdf
	COSObjectKeyPrefixAttachments = "blog/attachments/"
)

// DefaultMaxUploadSizeBytes 附件大小上限的兜底值 (5 MiB)，配置缺省时使用
const DefaultMaxUploadSizeBytes int64 = 5 * 1024 * 1024
