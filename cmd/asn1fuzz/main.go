// Copyright 2026 The asn1fuzz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command asn1fuzz encodes a JSON value description into DER bytes. The
// input document carries exactly one of a generic PDU, a certificate, or a
// mutated certificate chain:
//
//	{"pdu": {...}}
//	{"certificate": {...}}
//	{"chain": {"Chain": [...], "Mutations": [...], "TrustParameters": [...]}}
//
// The resulting bytes are written to the output file and their base64
// rendering is logged, mirroring the seed-inspection workflow this encoder
// exists for.
package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"codello.dev/asn1fuzz"
	"codello.dev/asn1fuzz/der"
	"codello.dev/asn1fuzz/x509"
)

var log *zap.SugaredLogger

func initLogger() {
	atom := zap.NewAtomicLevelAt(zap.InfoLevel)
	logger := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		atom))
	defer logger.Sync()
	log = logger.Sugar()
}

// document is the top-level input: exactly one member should be set. When
// several are set, the first in declaration order wins.
type document struct {
	PDU         *asn1fuzz.PDU      `json:"pdu,omitempty"`
	Certificate *x509.Certificate  `json:"certificate,omitempty"`
	Chain       *x509.MutatedChain `json:"chain,omitempty"`
}

func main() {
	inPath := flag.String("in", "", "path to the JSON value description")
	outPath := flag.String("out", "", "path to write the DER bytes to (defaults to stdout)")
	profiling := flag.Bool("profile", false, "enable CPU profiling")
	flag.Parse()

	initLogger()
	if *profiling {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}
	if *inPath == "" {
		log.Fatal("missing required flag -in")
	}

	data, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Fatalf("decoding input: %v", err)
	}

	out := encode(&doc)
	log.Infof("encoded %d bytes: %s", len(out), base64.StdEncoding.EncodeToString(out))

	if *outPath == "" {
		if _, err := os.Stdout.Write(out); err != nil {
			log.Fatalf("writing output: %v", err)
		}
		return
	}
	if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		log.Fatalf("writing output: %v", err)
	}
}

func encode(doc *document) []byte {
	switch {
	case doc.PDU != nil:
		return der.EncodePDU(doc.PDU)
	case doc.Certificate != nil:
		return x509.EncodeCertificate(doc.Certificate)
	case doc.Chain != nil:
		var out []byte
		for i, cert := range x509.EncodeMutatedChain(*doc.Chain) {
			log.Infof("certificate %d: %d bytes, trusted=%t", i, len(cert.DER), cert.Trusted)
			out = append(out, cert.DER...)
		}
		return out
	default:
		log.Fatal("input document holds no pdu, certificate, or chain")
		return nil
	}
}
