package code

// Common codes
// 通用状态码
var (
	Success = NewSuss(0, lang{en: "Success", zh_cn: "成功"})

	ErrorServerInternal       = NewError(10000000, lang{en: "Server internal error", zh_cn: "服务内部错误"})
	ErrorInvalidParams        = NewError(10000001, lang{en: "Invalid request parameters", zh_cn: "入参错误"})
	ErrorTooManyRequests      = NewError(10000002, lang{en: "Too many requests", zh_cn: "请求过多"})
	ErrorNotUserAuthToken     = NewError(10000003, lang{en: "Auth token not provided", zh_cn: "未提供认证令牌"})
	ErrorInvalidUserAuthToken = NewError(10000004, lang{en: "Invalid auth token", zh_cn: "认证令牌无效"})
	ErrorRequestTimeout       = NewError(10000005, lang{en: "Request timeout", zh_cn: "请求超时"})
	ErrorNotFound             = NewError(10000006, lang{en: "Resource not found", zh_cn: "资源不存在"})
)

// User codes
// 用户状态码
var (
	ErrorUserExists       = NewError(20000001, lang{en: "User already exists", zh_cn: "用户已存在"})
	ErrorUserNotFound     = NewError(20000002, lang{en: "User not found", zh_cn: "用户不存在"})
	ErrorInvalidPassword  = NewError(20000003, lang{en: "Incorrect email or password", zh_cn: "邮箱或密码错误"})
	ErrorRegisterDisabled = NewError(20000004, lang{en: "Registration is disabled", zh_cn: "注册已关闭"})
)

// Folder / content codes
// 文件夹 / 内容状态码
var (
	ErrorFolderNotFound      = NewError(20100001, lang{en: "Folder not found", zh_cn: "文件夹不存在"})
	ErrorContentNotFound     = NewError(20100002, lang{en: "Content item not found", zh_cn: "内容条目不存在"})
	ErrorFolderQuotaReached  = NewError(20100003, lang{en: "Folder limit reached", zh_cn: "文件夹数量已达上限"})
	ErrorStorageQuotaReached = NewError(20100004, lang{en: "Storage limit reached", zh_cn: "存储空间已达上限"})
	ErrorFolderItemsReached  = NewError(20100005, lang{en: "Items per folder limit reached", zh_cn: "单文件夹条目数已达上限"})
	ErrorInvalidContentType  = NewError(20100006, lang{en: "Unknown content type", zh_cn: "未知的内容类型"})
)

// Marketplace / sharing codes
// 市场 / 分享状态码
var (
	ErrorVersionNotFound         = NewError(20200001, lang{en: "Marketplace version not found", zh_cn: "市场版本不存在"})
	ErrorPublishFailed           = NewError(20200002, lang{en: "Failed to publish folder", zh_cn: "文件夹发布失败"})
	ErrorMarketplaceQuotaReached = NewError(20200003, lang{en: "Marketplace share limit reached", zh_cn: "市场分享数量已达上限"})
	ErrorPaidShareNotAllowed     = NewError(20200004, lang{en: "Paid sharing is not allowed on this plan", zh_cn: "当前套餐不支持付费分享"})
	ErrorPublishConflict         = NewError(20200005, lang{en: "Concurrent publish detected, please retry", zh_cn: "检测到并发发布，请重试"})
	ErrorImportFailed            = NewError(20200006, lang{en: "Failed to import marketplace version", zh_cn: "市场版本导入失败"})
)
