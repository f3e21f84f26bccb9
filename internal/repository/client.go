// internal/repository/client.go
package repository

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"learn-english-api/internal/config"
)

// usersCollection は全データのルートコレクション。
// users/{email} がアカウント、users/{account}/vocab/{english} が単語ドキュメント。
const (
	usersCollection = "users"
	vocabCollection = "vocab"
)

// NewClient はFirestoreクライアントを生成します。
// クライアントはプロセス起動時に一度だけ作成され、全ハンドラで共有されます。
func NewClient(ctx context.Context, cfg *config.Config, appLogger *slog.Logger) (*firestore.Client, error) {
	var opts []option.ClientOption
	if cfg.Firestore.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.Firestore.ProjectID, opts...)
	if err != nil {
		appLogger.Error("Failed to create Firestore client", slog.Any("error", err))
		return nil, err
	}

	appLogger.Info("Firestore client created", slog.String("project_id", cfg.Firestore.ProjectID))
	return client, nil
}
