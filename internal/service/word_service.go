//go:generate mockery --name WordService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"learn-english-api/internal/middleware"
	"learn-english-api/internal/model"
	"learn-english-api/internal/repository"
)

// WordService は単語操作のユースケースを提供します。
// クライアント起因の失敗は AppError として返し、
// それ以外は model.ErrInternalServer に変換します。
type WordService interface {
	GetWords(ctx context.Context, account string) ([]*model.Word, error)
	GetImportantWords(ctx context.Context, account string) ([]*model.Word, error)
	GetWord(ctx context.Context, account, english string) (*model.Word, error)
	GetImportantWord(ctx context.Context, account, english string) (*model.Word, error)
	CreateWord(ctx context.Context, account string, req *model.CreateWordRequest) error
	UpdateWord(ctx context.Context, account string, req *model.UpdateWordRequest) error
	DeleteWord(ctx context.Context, account, english string) error
	ToggleImportant(ctx context.Context, account, english string) (bool, error)
}

type wordService struct {
	wordRepo repository.WordRepository
}

func NewWordService(wordRepo repository.WordRepository) WordService {
	return &wordService{wordRepo: wordRepo}
}

func (s *wordService) GetWords(ctx context.Context, account string) ([]*model.Word, error) {
	words, err := s.wordRepo.List(ctx, account)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing words", "error", err)
		return nil, model.ErrInternalServer
	}
	return words, nil
}

func (s *wordService) GetImportantWords(ctx context.Context, account string) ([]*model.Word, error) {
	words, err := s.wordRepo.ListImportant(ctx, account)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing important words", "error", err)
		return nil, model.ErrInternalServer
	}
	return words, nil
}

func (s *wordService) GetWord(ctx context.Context, account, english string) (*model.Word, error) {
	if english == "" {
		return nil, model.NewAppError("EMPTY_SEARCH_WORD", "please enter a word to search", model.ErrInvalidInput)
	}

	word, err := s.wordRepo.Find(ctx, account, english)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORD_NOT_FOUND", "word not found", model.ErrNotFound)
		}
		middleware.GetLogger(ctx).Error("Error getting word", "error", err)
		return nil, model.ErrInternalServer
	}
	return word, nil
}

func (s *wordService) GetImportantWord(ctx context.Context, account, english string) (*model.Word, error) {
	if english == "" {
		return nil, model.NewAppError("EMPTY_SEARCH_WORD", "please enter a word to search", model.ErrInvalidInput)
	}

	word, err := s.wordRepo.FindImportant(ctx, account, english)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORD_NOT_FOUND", "word not found", model.ErrNotFound)
		}
		middleware.GetLogger(ctx).Error("Error getting important word", "error", err)
		return nil, model.ErrInternalServer
	}
	return word, nil
}

// CreateWord は新しい単語を登録します。形式バリデーションはハンドラ層で済んでいる前提で、
// ここでは重複のみを扱います。重複判定はリポジトリのアトミックなCreateに任せます。
func (s *wordService) CreateWord(ctx context.Context, account string, req *model.CreateWordRequest) error {
	word := &model.Word{
		English: req.English,
		Chinese: req.Chinese,
	}

	if err := s.wordRepo.Create(ctx, account, word); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.NewAppError("WORD_EXISTS", "word already exists", model.ErrConflict)
		}
		middleware.GetLogger(ctx).Error("Error creating word", "error", err)
		return model.ErrInternalServer
	}
	return nil
}

// UpdateWord は chinese を上書きします。存在しない単語への更新は何もせず成功します。
func (s *wordService) UpdateWord(ctx context.Context, account string, req *model.UpdateWordRequest) error {
	if err := s.wordRepo.UpdateChinese(ctx, account, req.English, req.Chinese); err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			return model.NewAppError("EMPTY_WORD", "english must not be empty", model.ErrInvalidInput)
		}
		middleware.GetLogger(ctx).Error("Error updating word", "error", err)
		return model.ErrInternalServer
	}
	return nil
}

// DeleteWord は冪等です。存在しない単語の削除も成功として扱います。
func (s *wordService) DeleteWord(ctx context.Context, account, english string) error {
	if err := s.wordRepo.Delete(ctx, account, english); err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			return model.NewAppError("EMPTY_WORD", "english must not be empty", model.ErrInvalidInput)
		}
		middleware.GetLogger(ctx).Error("Error deleting word", "error", err)
		return model.ErrInternalServer
	}
	return nil
}

// ToggleImportant は収蔵フラグを反転し、反転後の値を返します。
func (s *wordService) ToggleImportant(ctx context.Context, account, english string) (bool, error) {
	nowImportant, err := s.wordRepo.ToggleImportant(ctx, account, english)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			return false, model.NewAppError("WORD_NOT_FOUND", "word not found", model.ErrNotFound)
		case errors.Is(err, model.ErrInvalidInput):
			return false, model.NewAppError("EMPTY_WORD", "english must not be empty", model.ErrInvalidInput)
		}
		middleware.GetLogger(ctx).Error("Error toggling important flag", "error", err)
		return false, model.ErrInternalServer
	}
	return nowImportant, nil
}
