package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDelivery struct {
	to   []string
	code []string
}

func (r *recordingDelivery) Send(to, code string) error {
	r.to = append(r.to, to)
	r.code = append(r.code, code)
	return nil
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "admin@example.com", NormalizeEmail("  Admin@Example.com  "))
	assert.Equal(t, "admin@example.com", NormalizeEmail("admin@example.com"))
}

func TestIssueAndVerify(t *testing.T) {
	svc := NewCodeService(&recordingDelivery{})

	code, err := svc.Issue("admin@example.com")
	require.NoError(t, err)
	require.Len(t, code, 6)

	assert.True(t, svc.Verify("admin@example.com", code))
}

func TestVerifyIsCaseInsensitiveOnEmail(t *testing.T) {
	svc := NewCodeService(&recordingDelivery{})

	code, err := svc.Issue("  Admin@Example.com  ")
	require.NoError(t, err)

	assert.True(t, svc.Verify("admin@example.com", code))
}

func TestCodeIsSingleUse(t *testing.T) {
	svc := NewCodeService(&recordingDelivery{})

	code, err := svc.Issue("admin@example.com")
	require.NoError(t, err)

	require.True(t, svc.Verify("admin@example.com", code))
	assert.False(t, svc.Verify("admin@example.com", code))
}

func TestWrongCodeDoesNotConsume(t *testing.T) {
	svc := NewCodeService(&recordingDelivery{})

	code, err := svc.Issue("admin@example.com")
	require.NoError(t, err)

	assert.False(t, svc.Verify("admin@example.com", "000000"))
	assert.True(t, svc.Verify("admin@example.com", code))
}

func TestIssueOverwritesPriorCode(t *testing.T) {
	svc := NewCodeService(&recordingDelivery{})

	first, err := svc.Issue("admin@example.com")
	require.NoError(t, err)
	second, err := svc.Issue("admin@example.com")
	require.NoError(t, err)

	if first != second {
		assert.False(t, svc.Verify("admin@example.com", first))
	}
	assert.True(t, svc.Verify("admin@example.com", second))
}

func TestCodeExpires(t *testing.T) {
	svc := NewCodeService(&recordingDelivery{})

	current := time.Now()
	svc.now = func() time.Time { return current }

	code, err := svc.Issue("admin@example.com")
	require.NoError(t, err)

	current = current.Add(CodeTTL + time.Second)
	assert.False(t, svc.Verify("admin@example.com", code))
}

func TestSweepRemovesExpiredCodes(t *testing.T) {
	svc := NewCodeService(&recordingDelivery{})

	current := time.Now()
	svc.now = func() time.Time { return current }

	_, err := svc.Issue("admin@example.com")
	require.NoError(t, err)

	current = current.Add(CodeTTL + time.Second)
	svc.sweepExpired()

	assert.Empty(t, svc.codes)
}

func TestDeliveryReceivesNormalizedRecipient(t *testing.T) {
	delivery := &recordingDelivery{}
	svc := NewCodeService(delivery)

	code, err := svc.Issue("  Admin@Example.com  ")
	require.NoError(t, err)

	require.Len(t, delivery.to, 1)
	assert.Equal(t, "admin@example.com", delivery.to[0])
	assert.Equal(t, code, delivery.code[0])
}
