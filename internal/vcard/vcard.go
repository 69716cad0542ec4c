// Package vcard exports the card profile as a vCard 3.0 contact.
package vcard

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/iburimskiy/vnc/internal/config"
)

// MIMEType is the content type of Encode's output.
const MIMEType = "text/vcard"

// maxLine is the content line limit in octets, excluding the CRLF.
const maxLine = 75

var escaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, ",", `\,`, ";", `\;`)

func escape(s string) string {
	return escaper.Replace(norm.NFC.String(strings.TrimSpace(s)))
}

// Encode renders p as a vCard. The email is decoded from its obfuscated
// form; a malformed email is an error rather than a silently broken card.
func Encode(p config.Profile) ([]byte, error) {
	email, err := p.Contact.DecodeEmail()
	if err != nil {
		return nil, fmt.Errorf("encode vcard: %w", err)
	}

	family, given := splitName(p.Name)

	var b strings.Builder
	line := func(k, v string) {
		if v == "" {
			return
		}
		fold(&b, k+":"+v)
	}
	line("BEGIN", "VCARD")
	line("VERSION", "3.0")
	line("N", escape(family)+";"+escape(given)+";;;")
	line("FN", escape(p.Name))
	line("TITLE", escape(p.Role))
	line("ORG", escape(p.Company))
	line("TEL;TYPE=CELL", escape(p.Contact.Phone))
	line("EMAIL;TYPE=INTERNET", escape(email))
	line("URL", escape(p.Contact.Website))
	if p.Contact.Location != "" {
		line("ADR;TYPE=WORK", ";;;"+escape(p.Contact.Location)+";;;")
	}
	for _, s := range p.Socials {
		line("X-SOCIALPROFILE;TYPE="+strings.ToLower(s.ID), escape(s.URL))
	}
	line("END", "VCARD")
	return []byte(b.String()), nil
}

// fold writes one content line, breaking it into physical lines of at
// most maxLine octets. Continuation lines start with a space and breaks
// never split a UTF-8 sequence.
func fold(b *strings.Builder, line string) {
	limit := maxLine
	for len(line) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
		limit = maxLine - 1
	}
	b.WriteString(line)
	b.WriteString("\r\n")
}

// Filename suggests a file name for the exported contact.
func Filename(p config.Profile) string {
	name := strings.Join(strings.Fields(strings.ToLower(p.Name)), "-")
	if name == "" {
		name = "contact"
	}
	return name + ".vcf"
}

func splitName(full string) (family, given string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return "", parts[0]
	}
	return parts[len(parts)-1], strings.Join(parts[:len(parts)-1], " ")
}
