package seal_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jellyswarrm/jellyswarrm/seal"
)

var _ = Describe("Encrypt/Decrypt", func() {
	key := seal.DeriveKey(seal.KeyHash("master_key_123"))

	It("round-trips a password", func() {
		sealed, err := seal.Encrypt("my_secret_password", key)
		Expect(err).NotTo(HaveOccurred())

		plain, err := seal.Decrypt(sealed, key)
		Expect(err).NotTo(HaveOccurred())
		Expect(plain).To(Equal("my_secret_password"))
	})

	It("round-trips the empty string", func() {
		sealed, err := seal.Encrypt("", key)
		Expect(err).NotTo(HaveOccurred())

		plain, err := seal.Decrypt(sealed, key)
		Expect(err).NotTo(HaveOccurred())
		Expect(plain).To(Equal(""))
	})

	It("round-trips special characters", func() {
		password := "p@ssw0rd!#$%^&*()_+-=[]{}|;':\",./<>?"
		sealed, err := seal.Encrypt(password, key)
		Expect(err).NotTo(HaveOccurred())

		plain, err := seal.Decrypt(sealed, key)
		Expect(err).NotTo(HaveOccurred())
		Expect(plain).To(Equal(password))
	})

	It("produces different ciphertexts for the same plaintext", func() {
		a, err := seal.Encrypt("same", key)
		Expect(err).NotTo(HaveOccurred())
		b, err := seal.Encrypt("same", key)
		Expect(err).NotTo(HaveOccurred())

		Expect(a).NotTo(Equal(b))
	})

	It("fails to decrypt with the wrong key", func() {
		sealed, err := seal.Encrypt("my_secret_password", key)
		Expect(err).NotTo(HaveOccurred())

		wrong := seal.DeriveKey(seal.KeyHash("wrong_key_456"))
		_, err = seal.Decrypt(sealed, wrong)
		Expect(err).To(MatchError(seal.ErrWrongKey))
	})

	It("rejects values that are not base64", func() {
		_, err := seal.Decrypt("%%% not base64 %%%", key)
		Expect(err).To(MatchError(seal.ErrMalformed))
	})

	It("rejects values shorter than a nonce", func() {
		_, err := seal.Decrypt("c2hvcnQ=", key) // "short"
		Expect(err).To(MatchError(seal.ErrMalformed))
	})
})

var _ = Describe("DeriveKey", func() {
	It("is deterministic", func() {
		Expect(seal.DeriveKey("secret")).To(Equal(seal.DeriveKey("secret")))
	})

	It("differs for different secrets", func() {
		Expect(seal.DeriveKey("secret")).NotTo(Equal(seal.DeriveKey("secret2")))
	})
})

var _ = Describe("KeyHash", func() {
	It("is deterministic hex SHA-256", func() {
		h := seal.KeyHash("password")
		Expect(h).To(HaveLen(64))
		Expect(h).To(Equal(seal.KeyHash("password")))
		Expect(h).NotTo(Equal(seal.KeyHash("Password")))
	})
})

var _ = Describe("HashPassword/Verify", func() {
	It("verifies a bcrypt hash", func() {
		hash, err := seal.HashPassword("hunter2")
		Expect(err).NotTo(HaveOccurred())

		Expect(seal.Verify("hunter2", hash)).To(BeTrue())
		Expect(seal.Verify("hunter3", hash)).To(BeFalse())
		Expect(seal.NeedsRehash(hash)).To(BeFalse())
	})

	It("accepts a legacy hex SHA-256 hash and flags it for rehash", func() {
		legacy := seal.KeyHash("hunter2")

		Expect(seal.Verify("hunter2", legacy)).To(BeTrue())
		Expect(seal.Verify("hunter3", legacy)).To(BeFalse())
		Expect(seal.NeedsRehash(legacy)).To(BeTrue())
	})
})

var _ = Describe("SignToken/ParseToken", func() {
	key := []byte("0123456789abcdef0123456789abcdef")

	It("round-trips the subject", func() {
		token := seal.SignToken("admin", time.Minute, key)

		subject, err := seal.ParseToken(token, key)
		Expect(err).NotTo(HaveOccurred())
		Expect(subject).To(Equal("admin"))
	})

	It("keeps colons inside the subject intact", func() {
		token := seal.SignToken("user:with:colons", time.Minute, key)

		subject, err := seal.ParseToken(token, key)
		Expect(err).NotTo(HaveOccurred())
		Expect(subject).To(Equal("user:with:colons"))
	})

	It("rejects a tampered token", func() {
		token := seal.SignToken("admin", time.Minute, key)
		tampered := "x" + token[1:]

		_, err := seal.ParseToken(tampered, key)
		Expect(err).To(MatchError(seal.ErrBadToken))
	})

	It("rejects a token signed with a different key", func() {
		token := seal.SignToken("admin", time.Minute, []byte("another-key-another-key-another!"))

		_, err := seal.ParseToken(token, key)
		Expect(err).To(MatchError(seal.ErrBadToken))
	})

	It("rejects an expired token", func() {
		token := seal.SignToken("admin", -time.Minute, key)

		_, err := seal.ParseToken(token, key)
		Expect(err).To(MatchError(seal.ErrTokenExpired))
	})

	It("rejects garbage", func() {
		_, err := seal.ParseToken("not-a-token", key)
		Expect(err).To(MatchError(seal.ErrBadToken))
	})
})
