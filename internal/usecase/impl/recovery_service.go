package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"devicequote/config"
	deliverycontext "devicequote/internal/delivery/context"
	"devicequote/internal/domain/entity"
	domainerrors "devicequote/internal/domain/errors"
	"devicequote/internal/domain/repository"
	"devicequote/internal/domain/service"
	"devicequote/internal/errors"
	"devicequote/internal/infra/metrics"
	"devicequote/internal/usecase"

	"github.com/thanhpk/randstr"
	"go.uber.org/fx"
)

// tokenBytes gives 256-bit tokens. randstr.Hex takes a character count, so
// tokens are tokenBytes*2 hex characters.
const tokenBytes = 32

// RecoveryServiceParams holds dependencies for RecoveryService, injected by Fx
type RecoveryServiceParams struct {
	fx.In

	RecoveryRepo repository.RecoveryRepository
	Pricing      usecase.PricingUsecase
	QRCode       service.QRCodeService
	Config       *config.Config
	Metrics      *metrics.Registry
	Logger       *slog.Logger
}

type recoveryService struct {
	recoveryRepo repository.RecoveryRepository
	pricing      usecase.PricingUsecase
	qrcode       service.QRCodeService
	cfg          *config.RecoveryConfig
	metrics      *metrics.Registry
	logger       *slog.Logger
	now          func() time.Time
	newToken     func() string
}

// NewRecoveryService creates a new recovery service instance
func NewRecoveryService(params RecoveryServiceParams) usecase.RecoveryUsecase {
	return &recoveryService{
		recoveryRepo: params.RecoveryRepo,
		pricing:      params.Pricing,
		qrcode:       params.QRCode,
		cfg:          params.Config.Recovery,
		metrics:      params.Metrics,
		logger:       params.Logger,
		now:          time.Now,
		newToken:     func() string { return randstr.Hex(tokenBytes * 2) },
	}
}

// Save stores the wizard state under a fresh token.
func (s *recoveryService) Save(ctx context.Context, input *usecase.SaveRecoveryInput) (*usecase.SavedRecovery, error) {
	token := s.newToken()
	now := s.now().UTC()

	session := &entity.RecoverySession{
		TokenHash: hashToken(token),
		Input:     input.Input,
		Selection: input.Selection,
		Email:     input.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.TTL),
	}

	if err := s.recoveryRepo.CreateRecoverySession(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to save recovery session")
	}

	s.metrics.RecoverySaved.Inc()
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Recovery session saved",
		slog.String("device_id", input.Selection.DeviceID),
		slog.Time("expires_at", session.ExpiresAt),
		slog.Bool("has_email", input.Email != nil),
	)

	return &usecase.SavedRecovery{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		ResumeURL: s.resumeURL(token),
	}, nil
}

// Load restores a session; it never consumes it.
func (s *recoveryService) Load(ctx context.Context, token string) (*usecase.RecoveredSession, error) {
	if !validToken(token) {
		return nil, domainerrors.ErrRecoveryNotFound
	}

	session, err := s.recoveryRepo.FindRecoverySession(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrRecoverySessionNotFound) {
			return nil, domainerrors.ErrRecoveryNotFound
		}

		return nil, errors.Wrap(err, "failed to load recovery session")
	}

	if session.IsExpired(s.now()) {
		return nil, domainerrors.ErrRecoveryExpired.WithDetails("expired at " + session.ExpiresAt.UTC().Format(time.RFC3339))
	}

	return &usecase.RecoveredSession{
		Input:     session.Input,
		Selection: session.Selection,
		Email:     session.Email,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Resume re-prices a restored session. Prices are never stored with the
// session, so the quote reflects the current price table.
func (s *recoveryService) Resume(ctx context.Context, token string) (*usecase.ResumedSession, error) {
	session, err := s.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	resumed := &usecase.ResumedSession{Session: session}
	if session.Selection.DeviceID == "" || session.Selection.Type == "" {
		return resumed, nil
	}

	input := session.Input
	quote, err := s.pricing.Resolve(ctx, &usecase.QuoteRequest{
		DeviceID:      session.Selection.DeviceID,
		Type:          session.Selection.Type,
		Storage:       session.Selection.Storage,
		Condition:     &input,
		IssueIDs:      session.Selection.IssueIDs,
		ScreenVariant: session.Selection.ScreenVariant,
	})
	if err != nil {
		return nil, err
	}
	resumed.Quote = quote

	return resumed, nil
}

// ResumeQR renders the resume link of an active session.
func (s *recoveryService) ResumeQR(ctx context.Context, token string) ([]byte, error) {
	if _, err := s.Load(ctx, token); err != nil {
		return nil, err
	}

	resumeURL := s.resumeURL(token)
	if resumeURL == "" {
		return nil, domainerrors.ErrInternalError.WrapMessage("recovery base URL is not configured")
	}

	png, err := s.qrcode.GenerateResumeQR(resumeURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate resume QR code")
	}

	return png, nil
}

// PurgeExpired deletes sessions that expired more than the grace period ago.
// Until then they keep answering RECOVERY_EXPIRED instead of not found.
func (s *recoveryService) PurgeExpired(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.cfg.PurgeGrace)

	deleted, err := s.recoveryRepo.DeleteExpiredRecoverySessions(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge recovery sessions")
	}

	s.metrics.RecoveryPurged.Add(float64(deleted))
	if deleted > 0 {
		s.logger.Info("Purged expired recovery sessions", slog.Int64("deleted", deleted))
	}

	return deleted, nil
}

func (s *recoveryService) resumeURL(token string) string {
	if s.cfg.BaseURL == "" {
		return ""
	}

	return s.cfg.BaseURL + token
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

func validToken(token string) bool {
	if len(token) != tokenBytes*2 {
		return false
	}
	_, err := hex.DecodeString(token)

	return err == nil
}
