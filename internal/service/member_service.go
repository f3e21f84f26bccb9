//go:generate mockery --name MemberService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"learn-english-api/internal/middleware"
	"learn-english-api/internal/model"
	"learn-english-api/internal/repository"
)

// MemberService はアカウントの登録とログイン照合を提供します。
type MemberService interface {
	Signup(ctx context.Context, req *model.SignupRequest) error
	Login(ctx context.Context, req *model.LoginRequest) error
}

type memberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) Signup(ctx context.Context, req *model.SignupRequest) error {
	member := &model.Member{
		Email: req.Email,
		Name:  req.Name,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.NewAppError("ACCOUNT_EXISTS", "account already exists", model.ErrConflict)
		}
		middleware.GetLogger(ctx).Error("Error creating member", "error", err)
		return model.ErrInternalServer
	}
	return nil
}

// Login は保存済みの name と email が入力と完全一致する場合のみ成功します。
// 「アカウントが存在しない」と「名前が違う」は同じメッセージで返し、
// アカウントの存在をレスポンスから推測できないようにしています。
func (s *memberService) Login(ctx context.Context, req *model.LoginRequest) error {
	mismatch := model.NewAppError("LOGIN_FAILED", "email or name incorrect", model.ErrMismatch)

	member, err := s.memberRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return mismatch
		}
		middleware.GetLogger(ctx).Error("Error finding member for login", "error", err)
		return model.ErrInternalServer
	}

	if member.Name != req.Name || member.Email != req.Email {
		return mismatch
	}
	return nil
}
