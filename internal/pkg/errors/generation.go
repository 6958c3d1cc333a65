package errors

import (
	"github.com/lk2023060901/premio-backend/internal/ai/provider/types"
)

var generationCodes = map[types.ErrorKind]int{
	types.ErrorKindMissingCredential:   ErrGenMissingCredential,
	types.ErrorKindInvalidCredential:   ErrGenInvalidCredential,
	types.ErrorKindInsufficientBalance: ErrGenInsufficientBalance,
	types.ErrorKindRateLimited:         ErrGenRateLimited,
	types.ErrorKindRemote:              ErrGenRemote,
	types.ErrorKindEmptyResponse:       ErrGenEmptyResponse,
	types.ErrorKindNetwork:             ErrGenNetwork,
}

// GenerationCode 返回生成错误分类对应的业务码
func GenerationCode(kind types.ErrorKind) int {
	if code, ok := generationCodes[kind]; ok {
		return code
	}
	return ErrInternalServer
}

// FromGeneration 将补全适配器的分类错误转换为 AppError，消息原样保留
// 非分类错误返回 nil
func FromGeneration(err error) *AppError {
	genErr, ok := types.AsGenerationError(err)
	if !ok {
		return nil
	}
	return NewWithMessage(GenerationCode(genErr.Kind), genErr.Message, err)
}
