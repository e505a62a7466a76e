package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/RichieRish05/ProRankAI/internal/common"
)

const bearerPrefix = "bearer "

// UnaryInterceptor authenticates every unary call from the
// authorization metadata header and stamps the caller's user id into
// the context. Health and reflection are exempt.
func UnaryInterceptor(v *Verifier) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if exempt(info.FullMethod) {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, common.UnauthenticatedError("missing metadata")
		}
		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, common.UnauthenticatedError("missing authorization header")
		}

		raw := values[0]
		if len(raw) > len(bearerPrefix) && strings.EqualFold(raw[:len(bearerPrefix)], bearerPrefix) {
			raw = raw[len(bearerPrefix):]
		}

		userID, err := v.Verify(raw)
		if err != nil {
			return nil, common.UnauthenticatedError("invalid token")
		}
		return handler(common.WithUserID(ctx, userID), req)
	}
}

func exempt(fullMethod string) bool {
	return strings.HasPrefix(fullMethod, "/grpc.health.") ||
		strings.HasPrefix(fullMethod, "/grpc.reflection.")
}
