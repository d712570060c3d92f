package util

const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusOK      = "ok"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 与数据表列宽一致
const (
	MaxSessionIDLen  = 64
	MaxModuleKeyLen  = 100
	MaxEventTypeLen  = 50
	MaxPageLen       = 200
	MaxQuestionIDLen = 100
	MaxSelectedLen   = 10
)
