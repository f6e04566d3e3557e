// Copyright © 2025 ACTA
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package actaresty

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/ACTA-Team/sdk/pkg/actaconf"
	"github.com/ACTA-Team/sdk/pkg/actamsgs"
	"github.com/ACTA-Team/sdk/pkg/confutil"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/sirupsen/logrus"
)

// APIKeyHeader is the header every outbound request carries. Setting a new key
// replaces the previous value outright - attachment never stacks.
const APIKeyHeader = "x-api-key"

type retryCtxKey struct{}

type retryCtx struct {
	id       string
	start    time.Time
	attempts uint
}

func shortID() string {
	return uuid.New().String()[0:8]
}

// New creates a new Resty client, using configuration that is passed in
//
// You can use the normal Resty builder pattern, to set per-instance configuration
// as required.
func New(ctx context.Context, conf *actaconf.HTTPClientConfig) (client *resty.Client, err error) {
	u, err := url.Parse(conf.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, i18n.WrapError(ctx, err, actamsgs.MsgClientInvalidHTTPURL, conf.URL)
	}

	connTimeout := confutil.DurationMin(conf.ConnectionTimeout, 0, *actaconf.DefaultHTTPConfig.ConnectionTimeout)
	httpClient := &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   connTimeout,
				KeepAlive: connTimeout,
			}).DialContext,
			ForceAttemptHTTP2: true,
		},
	}
	client = resty.NewWithClient(httpClient)

	_url := strings.TrimSuffix(conf.URL, "/")
	client.SetBaseURL(_url)
	log.L(ctx).Debugf("Created REST client to %s", _url)

	client.SetTimeout(confutil.DurationMin(conf.RequestTimeout, 0, *actaconf.DefaultHTTPConfig.RequestTimeout))

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		rCtx := req.Context()
		rc := rCtx.Value(retryCtxKey{})
		if rc == nil {
			// First attempt
			r := &retryCtx{
				id:    shortID(),
				start: time.Now(),
			}
			rCtx = context.WithValue(rCtx, retryCtxKey{}, r)
			// Create a request logger from the root logger passed into the client
			rCtx = log.WithLogField(rCtx, "breq", r.id)
			req.SetContext(rCtx)
		}

		log.L(rCtx).Debugf("==> %s %s%s", req.Method, _url, req.URL)
		log.L(rCtx).Tracef("==> (body) %+v", req.Body)

		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		if resp == nil {
			return nil
		}
		rCtx := resp.Request.Context()
		rc := rCtx.Value(retryCtxKey{}).(*retryCtx)
		level := logrus.DebugLevel
		status := resp.StatusCode()
		if status >= 300 {
			level = logrus.ErrorLevel
		}
		log.L(rCtx).Logf(level, "<== %s %s [%d] (%dms)", resp.Request.Method, resp.Request.URL, status, time.Since(rc.start).Milliseconds())
		return nil
	})

	for k, v := range conf.HTTPHeaders {
		if vs, ok := v.(string); ok {
			client.SetHeader(k, vs)
		}
	}

	if conf.Retry.Enabled {
		var retryStatusCodeRegex *regexp.Regexp
		if conf.Retry.ErrorStatusCodes != "" {
			retryStatusCodeRegex = regexp.MustCompile(conf.Retry.ErrorStatusCodes)
		}

		retryCount := confutil.IntMin(conf.Retry.Count, 0, *actaconf.DefaultHTTPConfig.Retry.Count)
		minTimeout := confutil.DurationMin(conf.Retry.InitialDelay, 0, *actaconf.DefaultHTTPConfig.Retry.InitialDelay)
		maxTimeout := confutil.DurationMin(conf.Retry.MaximumDelay, 0, *actaconf.DefaultHTTPConfig.Retry.MaximumDelay)

		client.
			SetRetryCount(retryCount).
			SetRetryWaitTime(minTimeout).
			SetRetryMaxWaitTime(maxTimeout).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				if r == nil || r.IsSuccess() {
					return false
				}

				if r.StatusCode() > 0 && retryStatusCodeRegex != nil && !retryStatusCodeRegex.MatchString(r.Status()) {
					// the error status code doesn't match the retry status code regex, stop retry
					return false
				}

				rCtx := r.Request.Context()
				rc := rCtx.Value(retryCtxKey{}).(*retryCtx)
				rc.attempts++
				log.L(rCtx).Infof("retry %d/%d (min=%dms/max=%dms) status=%d", rc.attempts, retryCount, minTimeout.Milliseconds(), maxTimeout.Milliseconds(), r.StatusCode())
				return true
			})
	}

	return client, nil
}

// SetAPIKey attaches the resolved API key to every outbound request on the
// client. Safe to call again on reconfiguration: the header is replaced.
func SetAPIKey(client *resty.Client, apiKey string) {
	client.SetHeader(APIKeyHeader, apiKey)
}

func WrapRestErr(ctx context.Context, res *resty.Response, err error, key i18n.ErrorMessageKey) error {
	var respData string
	if res != nil {
		if res.RawBody() != nil {
			defer func() { _ = res.RawBody().Close() }()
			if r, err := io.ReadAll(res.RawBody()); err == nil {
				respData = string(r)
			}
		}
		if respData == "" {
			respData = res.String()
		}
		if len(respData) > 256 {
			respData = respData[0:256] + "..."
		}
	}
	if err != nil {
		return i18n.WrapError(ctx, err, key, respData)
	}
	return i18n.NewError(ctx, key, respData)
}
