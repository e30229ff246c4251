package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldTraceID 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldUID 用户 ID 字段
	FieldUID = "uid"

	// FieldFolderID 文件夹 ID 字段
	FieldFolderID = "folderId"

	// FieldItemID 内容条目 ID 字段
	FieldItemID = "itemId"

	// FieldVersionID 市场版本 ID 字段
	FieldVersionID = "versionId"

	// FieldVersionNumber 版本号字段
	FieldVersionNumber = "versionNumber"

	// FieldFingerprint 内容指纹字段
	FieldFingerprint = "fingerprint"

	// FieldPlan 套餐字段
	FieldPlan = "plan"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldError 错误信息字段
	FieldError = "error"

	// FieldSize 大小字段
	FieldSize = "size"
)
