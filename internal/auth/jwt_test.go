package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/RichieRish05/ProRankAI/internal/common"
)

func TestVerifyRoundTrip(t *testing.T) {
	v := NewVerifier("test-secret")
	userID := uuid.New()

	token, err := v.Sign(userID)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	got, err := v.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got != userID {
		t.Errorf("user id = %s, want %s", got, userID)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewVerifier("secret-a").Sign(uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewVerifier("secret-b").Verify(token); err == nil {
		t.Error("token signed with another secret accepted")
	}
}

func TestVerifyRejectsNonUUIDSubject(t *testing.T) {
	v := NewVerifier("test-secret")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "not-a-uuid"})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := v.Verify(signed); err == nil {
		t.Error("token with junk subject accepted")
	}
}

func TestVerifyRejectsUnsignedAlg(t *testing.T) {
	v := NewVerifier("test-secret")
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: uuid.NewString()})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := v.Verify(signed); err == nil {
		t.Error("alg=none token accepted")
	}
}

func TestUnaryInterceptor(t *testing.T) {
	v := NewVerifier("test-secret")
	userID := uuid.New()
	token, err := v.Sign(userID)
	if err != nil {
		t.Fatal(err)
	}

	intercept := UnaryInterceptor(v)
	info := &grpc.UnaryServerInfo{FullMethod: "/prorank.v1.ScreenerService/ListJobs"}

	var seenUser uuid.UUID
	handler := func(ctx context.Context, _ any) (any, error) {
		seenUser, _ = common.UserIDFromContext(ctx)
		return "ok", nil
	}

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer "+token))
	resp, err := intercept(ctx, nil, info, handler)
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if resp != "ok" {
		t.Errorf("resp = %v", resp)
	}
	if seenUser != userID {
		t.Errorf("handler saw user %s, want %s", seenUser, userID)
	}

	// No metadata at all.
	if _, err := intercept(context.Background(), nil, info, handler); status.Code(err) != codes.Unauthenticated {
		t.Errorf("missing metadata: code = %v, want Unauthenticated", status.Code(err))
	}

	// Garbage token.
	bad := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer garbage"))
	if _, err := intercept(bad, nil, info, handler); status.Code(err) != codes.Unauthenticated {
		t.Errorf("bad token: code = %v, want Unauthenticated", status.Code(err))
	}

	// Health checks bypass auth.
	health := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
	if _, err := intercept(context.Background(), nil, health, handler); err != nil {
		t.Errorf("health check rejected: %v", err)
	}
}
