package payment

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/audit"
	domainpayment "github.com/alanfo18/stcd/internal/domain/payment"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
	"github.com/alanfo18/stcd/internal/storage"
)

type UploadProof struct {
	repo     domainpayment.Repository
	uploader storage.Uploader
	audit    audit.Sink
}

func NewUploadProof(repo domainpayment.Repository, uploader storage.Uploader, auditSink audit.Sink) *UploadProof {
	return &UploadProof{repo: repo, uploader: uploader, audit: auditSink}
}

// Execute normaliza o arquivo, envia ao storage e registra o comprovante.
// O primeiro comprovante vira a ProofRef do pagamento.
func (uc *UploadProof) Execute(
	ctx context.Context,
	actor access.Actor,
	paymentID uint,
	fileName string,
	data []byte,
) (*models.ProofFile, error) {

	p, err := loadOwned(ctx, uc.repo, actor, paymentID)
	if err != nil {
		return nil, err
	}

	file, err := storage.NormalizeProof(data)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_file")
	}

	key := fmt.Sprintf("payments/%d/%s.%s", p.ID, uuid.NewString(), file.Ext)
	res, err := uc.uploader.Upload(ctx, storage.UploadInput{
		Key:          key,
		Body:         file.Body,
		ContentType:  file.ContentType,
		CacheControl: "private, max-age=31536000",
	})
	if errors.Is(err, storage.ErrUnavailable) {
		return nil, httperr.ErrBusiness("storage_unavailable")
	}
	if err != nil {
		return nil, err
	}

	proof := &models.ProofFile{
		PaymentID:   p.ID,
		URL:         res.URL,
		ContentType: file.ContentType,
		FileName:    filepath.Base(fileName),
	}
	if err := uc.repo.CreateProofFile(ctx, proof); err != nil {
		return nil, err
	}

	if p.ProofRef == "" {
		p.ProofRef = res.URL
		if err := uc.repo.UpdatePayment(ctx, p); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "payment_proof_uploaded",
		Entity:   "payment",
		EntityID: &p.ID,
		Metadata: map[string]any{"url": res.URL},
	})

	return proof, nil
}
