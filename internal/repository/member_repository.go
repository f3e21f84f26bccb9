// internal/repository/member_repository.go
package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"learn-english-api/internal/middleware"
	"learn-english-api/internal/model"
)

// MemberRepository は users/{email} のアカウントドキュメントへのアクセスを抽象化します。
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	FindByEmail(ctx context.Context, email string) (*model.Member, error)
}

type firestoreMemberRepository struct {
	client *firestore.Client
}

func NewFirestoreMemberRepository(client *firestore.Client) MemberRepository {
	return &firestoreMemberRepository{client: client}
}

func (r *firestoreMemberRepository) memberDoc(email string) *firestore.DocumentRef {
	return r.client.Collection(usersCollection).Doc(email)
}

// Create は同じメールアドレスのアカウントが既にあれば model.ErrConflict を返します。
// 重複判定はFirestoreのアトミックなCreateに任せています。
func (r *firestoreMemberRepository) Create(ctx context.Context, member *model.Member) error {
	logger := middleware.GetLogger(ctx)
	if member.Email == "" {
		return model.ErrInvalidInput
	}

	_, err := r.memberDoc(member.Email).Create(ctx, member)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			logger.Warn("Member already exists", "email", member.Email)
			return model.ErrConflict
		}
		logger.Error("Error creating member document", "error", err, "email", member.Email)
		return fmt.Errorf("firestoreMemberRepository.Create: %w", err)
	}
	return nil
}

func (r *firestoreMemberRepository) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	logger := middleware.GetLogger(ctx)
	if email == "" {
		return nil, model.ErrInvalidInput
	}

	snap, err := r.memberDoc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			logger.Debug("Member not found", "email", email)
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding member document", "error", err, "email", email)
		return nil, fmt.Errorf("firestoreMemberRepository.FindByEmail: %w", err)
	}

	var member model.Member
	if err := snap.DataTo(&member); err != nil {
		logger.Error("Error decoding member document", "error", err, "email", email)
		return nil, fmt.Errorf("firestoreMemberRepository.FindByEmail: %w", err)
	}
	return &member, nil
}
