// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/kkrgzz/encrypt-x/internal/app"
	"github.com/kkrgzz/encrypt-x/internal/crypto"
	"github.com/kkrgzz/encrypt-x/internal/logger"
	"github.com/kkrgzz/encrypt-x/internal/service"
	"github.com/kkrgzz/encrypt-x/internal/utils"
)

type errorReply struct {
	status  int
	message string
}

var errorReplyMap = map[error]errorReply{
	service.ErrInvalidDataProvided: {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrNothingToEncrypt:    {http.StatusBadRequest, app.MsgNothingToEncrypt},
	service.ErrUnableToProcess:     {http.StatusBadRequest, app.MsgUnableToProcess},
	service.ErrNotDecryptable:      {http.StatusBadRequest, app.MsgNotDecryptable},
	service.ErrReservedHint:        {http.StatusBadRequest, app.MsgReservedHint},
	service.ErrPasswordRequired:    {http.StatusUnauthorized, app.MsgPasswordRequired},
	service.ErrDecryptionFailed:    {http.StatusUnprocessableEntity, app.MsgDecryptionFailed},

	crypto.ErrUnsupportedVersion: {http.StatusBadRequest, app.MsgUnsupportedVersion},
	crypto.ErrInvalidParams:      {http.StatusInternalServerError, app.MsgInternalServerError},

	context.DeadlineExceeded: {http.StatusGatewayTimeout, http.StatusText(http.StatusGatewayTimeout)},
}

func replyFromError(err error) errorReply {
	for target, reply := range errorReplyMap {
		if errors.Is(err, target) {
			return reply
		}
	}
	return errorReply{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err and writes the matching status and message.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	reply := replyFromError(err)

	log := logger.FromRequest(r)
	if reply.status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", reply.status).Msg("request rejected")
	}

	utils.WriteError(w, reply.message, reply.status)
}
