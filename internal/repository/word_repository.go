// internal/repository/word_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"learn-english-api/internal/middleware"
	"learn-english-api/internal/model"
)

// WordRepository はアカウント単位の単語コレクションへのアクセスを抽象化します。
type WordRepository interface {
	List(ctx context.Context, account string) ([]*model.Word, error)
	ListImportant(ctx context.Context, account string) ([]*model.Word, error)
	Find(ctx context.Context, account, english string) (*model.Word, error)
	FindImportant(ctx context.Context, account, english string) (*model.Word, error)
	Create(ctx context.Context, account string, word *model.Word) error
	UpdateChinese(ctx context.Context, account, english, chinese string) error
	Delete(ctx context.Context, account, english string) error
	ToggleImportant(ctx context.Context, account, english string) (bool, error)
}

type firestoreWordRepository struct {
	client *firestore.Client
}

func NewFirestoreWordRepository(client *firestore.Client) WordRepository {
	return &firestoreWordRepository{client: client}
}

// vocab はアカウントの単語コレクション users/{account}/vocab への参照を返します。
func (r *firestoreWordRepository) vocab(account string) *firestore.CollectionRef {
	return r.client.Collection(usersCollection).Doc(account).Collection(vocabCollection)
}

// wordDoc は単語ドキュメントへの参照を返します。英単語がドキュメントIDです。
// Firestoreは空のドキュメントIDを扱えないため、呼び出し側で english の空チェックが必要です。
func (r *firestoreWordRepository) wordDoc(account, english string) *firestore.DocumentRef {
	return r.vocab(account).Doc(english)
}

func (r *firestoreWordRepository) List(ctx context.Context, account string) ([]*model.Word, error) {
	return r.collectWords(ctx, r.vocab(account).Documents(ctx), "List")
}

func (r *firestoreWordRepository) ListImportant(ctx context.Context, account string) ([]*model.Word, error) {
	query := r.vocab(account).Where("important", "==", true)
	return r.collectWords(ctx, query.Documents(ctx), "ListImportant")
}

// collectWords はドキュメントイテレータを読み切って単語スライスに変換します。
func (r *firestoreWordRepository) collectWords(ctx context.Context, iter *firestore.DocumentIterator, op string) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	defer iter.Stop()

	words := make([]*model.Word, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Error("Error iterating word documents", "error", err, "op", op)
			return nil, fmt.Errorf("firestoreWordRepository.%s: %w", op, err)
		}

		var word model.Word
		if err := snap.DataTo(&word); err != nil {
			logger.Error("Error decoding word document", "error", err, "doc_id", snap.Ref.ID)
			return nil, fmt.Errorf("firestoreWordRepository.%s: %w", op, err)
		}
		words = append(words, &word)
	}
	return words, nil
}

func (r *firestoreWordRepository) Find(ctx context.Context, account, english string) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	if english == "" {
		return nil, model.ErrInvalidInput
	}

	snap, err := r.wordDoc(account, english).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word document", "error", err, "account", account, "english", english)
		return nil, fmt.Errorf("firestoreWordRepository.Find: %w", err)
	}

	var word model.Word
	if err := snap.DataTo(&word); err != nil {
		logger.Error("Error decoding word document", "error", err, "english", english)
		return nil, fmt.Errorf("firestoreWordRepository.Find: %w", err)
	}
	return &word, nil
}

func (r *firestoreWordRepository) FindImportant(ctx context.Context, account, english string) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	if english == "" {
		return nil, model.ErrInvalidInput
	}

	query := r.vocab(account).
		Where("important", "==", true).
		Where("english", "==", english).
		Limit(1)

	iter := query.Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, model.ErrNotFound
	}
	if err != nil {
		logger.Error("Error querying important word", "error", err, "account", account, "english", english)
		return nil, fmt.Errorf("firestoreWordRepository.FindImportant: %w", err)
	}

	var word model.Word
	if err := snap.DataTo(&word); err != nil {
		logger.Error("Error decoding word document", "error", err, "english", english)
		return nil, fmt.Errorf("firestoreWordRepository.FindImportant: %w", err)
	}
	return &word, nil
}

// Create はFirestoreのCreate (存在すれば失敗するアトミックな条件付き書き込み) を使います。
// 存在チェックと書き込みを分けると並行リクエストで重複が作れてしまうためです。
func (r *firestoreWordRepository) Create(ctx context.Context, account string, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	if word.English == "" {
		return model.ErrInvalidInput
	}

	_, err := r.wordDoc(account, word.English).Create(ctx, word)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			logger.Warn("Word already exists", "account", account, "english", word.English)
			return model.ErrConflict
		}
		logger.Error("Error creating word document", "error", err, "account", account, "english", word.English)
		return fmt.Errorf("firestoreWordRepository.Create: %w", err)
	}
	return nil
}

// UpdateChinese は chinese フィールドだけを上書きします。
// ドキュメントが存在しない場合は何もしません (存在チェックなしの契約を維持)。
func (r *firestoreWordRepository) UpdateChinese(ctx context.Context, account, english, chinese string) error {
	logger := middleware.GetLogger(ctx)
	if english == "" {
		return model.ErrInvalidInput
	}

	_, err := r.wordDoc(account, english).Update(ctx, []firestore.Update{
		{Path: "chinese", Value: chinese},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			logger.Debug("Word not found for update (no-op)", "account", account, "english", english)
			return nil
		}
		logger.Error("Error updating word document", "error", err, "account", account, "english", english)
		return fmt.Errorf("firestoreWordRepository.UpdateChinese: %w", err)
	}
	return nil
}

// Delete は冪等です。存在しないドキュメントの削除も成功として扱われます。
func (r *firestoreWordRepository) Delete(ctx context.Context, account, english string) error {
	logger := middleware.GetLogger(ctx)
	if english == "" {
		return model.ErrInvalidInput
	}

	_, err := r.wordDoc(account, english).Delete(ctx)
	if err != nil {
		logger.Error("Error deleting word document", "error", err, "account", account, "english", english)
		return fmt.Errorf("firestoreWordRepository.Delete: %w", err)
	}
	return nil
}

// ToggleImportant は important フラグを反転し、反転後の値を返します。
// 読み取りと書き込みの間に他のリクエストが割り込まないよう、トランザクションで行います。
func (r *firestoreWordRepository) ToggleImportant(ctx context.Context, account, english string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	if english == "" {
		return false, model.ErrInvalidInput
	}

	var nowImportant bool
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ref := r.wordDoc(account, english)
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return model.ErrNotFound
			}
			return err
		}

		var word model.Word
		if err := snap.DataTo(&word); err != nil {
			return err
		}

		nowImportant = !word.Important
		return tx.Update(ref, []firestore.Update{
			{Path: "important", Value: nowImportant},
		})
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, model.ErrNotFound
		}
		logger.Error("Error toggling important flag", "error", err, "account", account, "english", english)
		return false, fmt.Errorf("firestoreWordRepository.ToggleImportant: %w", err)
	}
	return nowImportant, nil
}
