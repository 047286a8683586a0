// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keyring

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/paradisesecurity/secrets-manager/internal/blobstore/mock"
	"github.com/paradisesecurity/secrets-manager/internal/checksum"
	"github.com/paradisesecurity/secrets-manager/internal/cryptoengine"
	"github.com/paradisesecurity/secrets-manager/models"
)

func TestSealAndPersist_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)

	facade := cryptoengine.New()
	kms, _ := facade.GenerateSymmetricEncryptionKey()
	signingKeypair, _ := facade.GenerateSignatureKeypair(nil)
	engine := checksum.New(facade)
	s, err := Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	store.EXPECT().Write(gomock.Any(), models.ConnectionKeyring, "default.keyring", gomock.Any(), models.VisibilityPrivate).Return(nil)
	store.EXPECT().Write(gomock.Any(), models.ConnectionChecksum, "default.checksum", gomock.Any(), models.VisibilityPrivate).Return(nil)

	err = SealAndPersist(context.Background(), store, facade, kms, engine, signingKeypair, s, "default.keyring", "default.checksum", models.VisibilityPrivate)
	if err != nil {
		t.Fatalf("SealAndPersist: %v", err)
	}
}

func TestSealAndPersist_SidecarWriteFails_RollsBackKeyringWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)

	facade := cryptoengine.New()
	kms, _ := facade.GenerateSymmetricEncryptionKey()
	signingKeypair, _ := facade.GenerateSignatureKeypair(nil)
	engine := checksum.New(facade)
	s, err := Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	sidecarWriteErr := errors.New("disk full")
	store.EXPECT().Write(gomock.Any(), models.ConnectionKeyring, "default.keyring", gomock.Any(), models.VisibilityPrivate).Return(nil)
	store.EXPECT().Write(gomock.Any(), models.ConnectionChecksum, "default.checksum", gomock.Any(), models.VisibilityPrivate).Return(sidecarWriteErr)
	store.EXPECT().Delete(gomock.Any(), models.ConnectionKeyring, "default.keyring").Return(nil)

	err = SealAndPersist(context.Background(), store, facade, kms, engine, signingKeypair, s, "default.keyring", "default.checksum", models.VisibilityPrivate)
	if !errors.Is(err, ErrPersistFailed) {
		t.Fatalf("got err %v, want ErrPersistFailed", err)
	}
	if errors.Is(err, ErrKeyringInconsistent) {
		t.Fatal("successful rollback must not report ErrKeyringInconsistent")
	}
}

func TestSealAndPersist_SidecarWriteFails_RollbackAlsoFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)

	facade := cryptoengine.New()
	kms, _ := facade.GenerateSymmetricEncryptionKey()
	signingKeypair, _ := facade.GenerateSignatureKeypair(nil)
	engine := checksum.New(facade)
	s, err := Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	store.EXPECT().Write(gomock.Any(), models.ConnectionKeyring, "default.keyring", gomock.Any(), models.VisibilityPrivate).Return(nil)
	store.EXPECT().Write(gomock.Any(), models.ConnectionChecksum, "default.checksum", gomock.Any(), models.VisibilityPrivate).Return(errors.New("disk full"))
	store.EXPECT().Delete(gomock.Any(), models.ConnectionKeyring, "default.keyring").Return(errors.New("connection lost"))

	err = SealAndPersist(context.Background(), store, facade, kms, engine, signingKeypair, s, "default.keyring", "default.checksum", models.VisibilityPrivate)
	if !errors.Is(err, ErrKeyringInconsistent) {
		t.Fatalf("got err %v, want ErrKeyringInconsistent", err)
	}
}

func TestSealAndPersist_KeyringWriteFails_NoSidecarAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)

	facade := cryptoengine.New()
	kms, _ := facade.GenerateSymmetricEncryptionKey()
	signingKeypair, _ := facade.GenerateSignatureKeypair(nil)
	engine := checksum.New(facade)
	s, err := Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	store.EXPECT().Write(gomock.Any(), models.ConnectionKeyring, "default.keyring", gomock.Any(), models.VisibilityPrivate).Return(errors.New("disk full"))

	err = SealAndPersist(context.Background(), store, facade, kms, engine, signingKeypair, s, "default.keyring", "default.checksum", models.VisibilityPrivate)
	if !errors.Is(err, ErrPersistFailed) {
		t.Fatalf("got err %v, want ErrPersistFailed", err)
	}
}
