package jwt

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"wakeup-punch-system/config"
	"wakeup-punch-system/internal/global/session"
)

// Claims 令牌载荷，jti 用于登出吊销
type Claims struct {
	MemberID   string `json:"member_id,omitempty"`
	Name       string `json:"name"`
	MemberCode string `json:"member_code,omitempty"`
	IsAdmin    bool   `json:"is_admin,omitempty"`
	jwt.StandardClaims
}

func (c *Claims) Session() *session.Session {
	return &session.Session{
		ID:         c.Id,
		MemberID:   c.MemberID,
		Name:       c.Name,
		MemberCode: c.MemberCode,
		IsAdmin:    c.IsAdmin,
		ExpiresAt:  time.Unix(c.ExpiresAt, 0),
	}
}

func secret() []byte {
	return []byte(config.Get().JWT.AccessSecret)
}

// CreateToken 按 jwt.access_expire 签发 HS256 令牌，返回令牌和写入的会话
func CreateToken(s session.Session) (string, *session.Session, error) {
	now := time.Now()
	expire := config.Get().JWT.AccessExpire
	if expire <= 0 {
		expire = 7 * 24 * 3600
	}
	claims := &Claims{
		MemberID:   s.MemberID,
		Name:       s.Name,
		MemberCode: s.MemberCode,
		IsAdmin:    s.IsAdmin,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(expire) * time.Second).Unix(),
			Issuer:    "wakeup-punch-system",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
	if err != nil {
		return "", nil, errors.WithStack(err)
	}
	return token, claims.Session(), nil
}

// ParseToken 签名错误、算法不符或已过期都视为无效
func ParseToken(token string) (*Claims, bool) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret(), nil
	})
	if err != nil || !parsed.Valid || claims.Id == "" {
		return nil, false
	}
	return claims, true
}
