// Package mocks provides hand-written test doubles for the interfaces used
// across flashdeck.
//
// Each mock exposes a function field per interface method. A nil field falls
// back to a simple default, usually the zero values or the fields on the
// struct, so tests only set what they care about:
//
//	jwtService := &mocks.MockJWTService{
//	    ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
//	        return &auth.Claims{UserID: "user-1"}, nil
//	    },
//	}
package mocks
