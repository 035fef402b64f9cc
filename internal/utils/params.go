package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetJobID(ctx *gin.Context) (uint64, error) {
	return GetIDParam(ctx, "id")
}

func GetApplicationID(ctx *gin.Context) (uint64, error) {
	return GetIDParam(ctx, "id")
}

func GetIDParam(ctx *gin.Context, name string) (uint64, error) {
	idStr := ctx.Param(name)

	if idStr == "" {
		return 0, errors.New("ID not found")
	}

	id, err := strconv.ParseUint(idStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid ID")
	}

	return id, nil
}
