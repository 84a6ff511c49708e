package security_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"summary-generator/internal/auth/adapter/security"
	"summary-generator/internal/auth/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type JWTTestSuite struct {
	suite.Suite
	config  *config.Config
	service *security.JWTokenService
	now     time.Time
}

func (suite *JWTTestSuite) SetupTest() {
	suite.config = &config.Config{
		SecretKey:      "test-secret-key-32-characters-long-12345",
		JWTIssuer:      "test-issuer",
		AccessTokenTTL: 30 * time.Minute,
	}
	suite.now = time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	service, err := security.NewJWTokenService(suite.config)
	require.NoError(suite.T(), err)
	suite.service = service.WithClock(suite.clock)
}

func (suite *JWTTestSuite) clock() time.Time {
	return suite.now
}

func (suite *JWTTestSuite) TestNewJWTokenService_ValidationErrors() {
	testCases := []struct {
		name         string
		modifyConfig func(*config.Config)
		expectedErr  string
	}{
		{
			name:         "empty secret key",
			modifyConfig: func(cfg *config.Config) { cfg.SecretKey = "" },
			expectedErr:  "jwt secret key cannot be empty",
		},
		{
			name:         "empty issuer",
			modifyConfig: func(cfg *config.Config) { cfg.JWTIssuer = "" },
			expectedErr:  "jwt issuer cannot be empty",
		},
		{
			name:         "zero TTL",
			modifyConfig: func(cfg *config.Config) { cfg.AccessTokenTTL = 0 },
			expectedErr:  "jwt access token TTL must be positive",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			cfg := *suite.config
			tc.modifyConfig(&cfg)

			service, err := security.NewJWTokenService(&cfg)

			assert.Error(suite.T(), err)
			assert.Nil(suite.T(), service)
			assert.Contains(suite.T(), err.Error(), tc.expectedErr)
		})
	}
}

func (suite *JWTTestSuite) TestGenerateToken_Claims() {
	tokenString, err := suite.service.GenerateToken(context.Background(), "testuser")
	require.NoError(suite.T(), err)

	parsed, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "HS256", parsed.Header["alg"])

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(suite.T(), "testuser", claims["sub"])
	assert.Equal(suite.T(), "test-issuer", claims["iss"])
	assert.NotEmpty(suite.T(), claims["jti"])
	assert.EqualValues(suite.T(), suite.now.Add(30*time.Minute).Unix(), claims["exp"])
}

func (suite *JWTTestSuite) TestValidateToken_RoundTrip() {
	ctx := context.Background()
	tokenString, err := suite.service.GenerateToken(ctx, "testuser")
	require.NoError(suite.T(), err)

	claims, err := suite.service.ValidateToken(ctx, tokenString)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "testuser", claims.Username())
	assert.WithinDuration(suite.T(), suite.now.Add(30*time.Minute), claims.ExpiresAtTime(), 0)
}

func (suite *JWTTestSuite) TestValidateToken_ValidUntilExpiry() {
	ctx := context.Background()
	tokenString, err := suite.service.IssueToken(ctx, "testuser", 10*time.Minute)
	require.NoError(suite.T(), err)

	suite.now = suite.now.Add(10*time.Minute - time.Second)
	_, err = suite.service.ValidateToken(ctx, tokenString)
	assert.NoError(suite.T(), err)

	suite.now = suite.now.Add(time.Second)
	claims, err := suite.service.ValidateToken(ctx, tokenString)
	assert.Nil(suite.T(), claims)
	assert.ErrorIs(suite.T(), err, security.ErrTokenExpired)
	assert.ErrorIs(suite.T(), err, security.ErrTokenInvalid)
}

func (suite *JWTTestSuite) TestIssueToken_NonPositiveTTLFallsBack() {
	ctx := context.Background()
	tokenString, err := suite.service.IssueToken(ctx, "testuser", 0)
	require.NoError(suite.T(), err)

	claims, err := suite.service.ValidateToken(ctx, tokenString)
	require.NoError(suite.T(), err)
	assert.WithinDuration(suite.T(), suite.now.Add(config.DefaultFallbackTokenTTL), claims.ExpiresAtTime(), 0)
}

func (suite *JWTTestSuite) TestIssueToken_EmptySubject() {
	_, err := suite.service.IssueToken(context.Background(), "", time.Minute)
	assert.Error(suite.T(), err)
}

func (suite *JWTTestSuite) TestValidateToken_InvalidSignature() {
	ctx := context.Background()

	differentConfig := *suite.config
	differentConfig.SecretKey = "different-secret-key-32-chars-long"
	differentService, err := security.NewJWTokenService(&differentConfig)
	require.NoError(suite.T(), err)
	differentService.WithClock(suite.clock)

	tokenString, err := differentService.GenerateToken(ctx, "testuser")
	require.NoError(suite.T(), err)

	claims, err := suite.service.ValidateToken(ctx, tokenString)

	assert.Nil(suite.T(), claims)
	assert.ErrorIs(suite.T(), err, security.ErrTokenSignatureInvalid)
	assert.ErrorIs(suite.T(), err, security.ErrTokenInvalid)
}

func (suite *JWTTestSuite) TestValidateToken_TamperedPayload() {
	ctx := context.Background()
	tokenString, err := suite.service.GenerateToken(ctx, "testuser")
	require.NoError(suite.T(), err)

	parts := strings.Split(tokenString, ".")
	require.Len(suite.T(), parts, 3)

	for i := range parts[1] {
		payload := []byte(parts[1])
		if payload[i] == 'A' {
			payload[i] = 'B'
		} else {
			payload[i] = 'A'
		}
		tampered := parts[0] + "." + string(payload) + "." + parts[2]

		claims, err := suite.service.ValidateToken(ctx, tampered)
		assert.Nil(suite.T(), claims, "byte %d", i)
		assert.ErrorIs(suite.T(), err, security.ErrTokenInvalid, "byte %d", i)
	}
}

func (suite *JWTTestSuite) TestValidateToken_MissingSubject() {
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(suite.now.Add(time.Minute)),
		Issuer:    suite.config.JWTIssuer,
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.config.SecretKey))
	require.NoError(suite.T(), err)

	result, err := suite.service.ValidateToken(context.Background(), tokenString)
	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, security.ErrTokenMissingSubject)
	assert.ErrorIs(suite.T(), err, security.ErrTokenInvalid)
}

func (suite *JWTTestSuite) TestValidateToken_MissingExpiry() {
	claims := jwt.RegisteredClaims{
		Subject: "testuser",
		Issuer:  suite.config.JWTIssuer,
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.config.SecretKey))
	require.NoError(suite.T(), err)

	_, err = suite.service.ValidateToken(context.Background(), tokenString)
	assert.ErrorIs(suite.T(), err, security.ErrTokenInvalid)
}

func (suite *JWTTestSuite) TestValidateToken_RejectsNoneAlgorithm() {
	claims := jwt.RegisteredClaims{
		Subject:   "testuser",
		Issuer:    suite.config.JWTIssuer,
		ExpiresAt: jwt.NewNumericDate(suite.now.Add(time.Minute)),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(suite.T(), err)

	_, err = suite.service.ValidateToken(context.Background(), tokenString)
	assert.ErrorIs(suite.T(), err, security.ErrTokenInvalid)
}

func (suite *JWTTestSuite) TestValidateToken_MalformedTokens() {
	testCases := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"invalid format", "invalid.token.format"},
		{"malformed jwt", "header.payload"},
		{"random string", "not-a-jwt-token"},
		{"incomplete jwt", "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			claims, err := suite.service.ValidateToken(context.Background(), tc.token)

			assert.Nil(suite.T(), claims)
			assert.ErrorIs(suite.T(), err, security.ErrTokenInvalid)
		})
	}
}

func TestJWTTestSuite(t *testing.T) {
	suite.Run(t, new(JWTTestSuite))
}
