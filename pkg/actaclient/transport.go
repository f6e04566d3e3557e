/*
 * Copyright © 2025 ACTA
 *
 * Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
 * the License. You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
 * an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
 * specific language governing permissions and limitations under the License.
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package actaclient

import (
	"context"

	"github.com/ACTA-Team/sdk/pkg/actamsgs"
	"github.com/ACTA-Team/sdk/pkg/actaresty"
	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/i18n"
)

// restAPI is the transport seam between the client logic and the wire. The
// unconnected stub sits behind it until HTTP is called.
type restAPI interface {
	doPost(ctx context.Context, path string, body, result any) error
	doGet(ctx context.Context, path string, result any) error
}

type httpREST struct {
	client *resty.Client
}

func (h *httpREST) doPost(ctx context.Context, path string, body, result any) error {
	res, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		Post(path)
	if err != nil || !res.IsSuccess() {
		return actaresty.WrapRestErr(ctx, res, err, actamsgs.MsgAPIRequestFailed)
	}
	return nil
}

func (h *httpREST) doGet(ctx context.Context, path string, result any) error {
	res, err := h.client.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil || !res.IsSuccess() {
		return actaresty.WrapRestErr(ctx, res, err, actamsgs.MsgAPIRequestFailed)
	}
	return nil
}

type unconnectedREST struct{}

func (u *unconnectedREST) doPost(ctx context.Context, path string, body, result any) error {
	return i18n.NewError(ctx, actamsgs.MsgClientNoConnection)
}

func (u *unconnectedREST) doGet(ctx context.Context, path string, result any) error {
	return i18n.NewError(ctx, actamsgs.MsgClientNoConnection)
}
