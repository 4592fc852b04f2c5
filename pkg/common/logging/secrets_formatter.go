// Copyright (c) 2019 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"strings"

	"github.com/datastax-examples/object-mapper-go/pkg/common"

	log "github.com/sirupsen/logrus"
)

const redactedStr = "REDACTED"

// Redactable is implemented by values which hold secrets, like connection
// configs carrying credentials. Redacted returns a copy safe to log.
type Redactable interface {
	Redacted() interface{}
}

// SecretsFormatter scrubs sensitive information from logs and formats logs into
// parsable json.
type SecretsFormatter struct {
	log.Formatter
}

// Format is called by logrus and returns the formatted string.
// It looks for secrets data in each entry and redacts it.
func (f *SecretsFormatter) Format(entry *log.Entry) ([]byte, error) {
	for k, v := range entry.Data {
		switch v := v.(type) {
		case string:
			if isSecretKey(k) {
				entry.Data[k] = redactedStr
				continue
			}
			// a statement touching a password column carries the secret
			// in its arguments
			if k == common.DBStmtLogField && isSecretKey(v) {
				if _, ok := entry.Data[common.DBArgsLogField]; ok {
					entry.Data[common.DBArgsLogField] = redactedStr
				}
			}
		case Redactable:
			entry.Data[k] = v.Redacted()
		}
	}
	return f.Formatter.Format(entry)
}

func isSecretKey(s string) bool {
	s = strings.ToLower(s)
	return strings.Contains(s, "password") || strings.Contains(s, "secret")
}
