package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	TokenKey  contextKey = "token"
	ClientKey contextKey = "client"
)

type clientInfo struct {
	userAgent string
	ip        string
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

func SetUserContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok && token != ""
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

// SetClientInfoContext records who is calling, for the session row.
func SetClientInfoContext(ctx context.Context, userAgent, ip string) context.Context {
	return context.WithValue(ctx, ClientKey, clientInfo{userAgent: userAgent, ip: ip})
}

func GetClientInfoFromContext(ctx context.Context) (userAgent, ip string) {
	info, _ := ctx.Value(ClientKey).(clientInfo)
	return info.userAgent, info.ip
}
