package stripeevent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleSubscriptionEvent = `{
  "id": "evt_1ABC",
  "type": "customer.subscription.updated",
  "livemode": false,
  "data": {
    "object": {
      "id": "sub_123",
      "customer": "cus_456",
      "status": "active",
      "current_period_start": 1756425600,
      "current_period_end": 1759017600,
      "cancel_at_period_end": true,
      "canceled_at": null
    }
  }
}`

const sampleInvoiceEvent = `{
  "id": "evt_2DEF",
  "type": "invoice.paid",
  "livemode": true,
  "data": {
    "object": {
      "id": "in_789",
      "customer": "cus_456",
      "subscription": "sub_123",
      "amount_paid": 9900,
      "currency": "brl",
      "status": "paid"
    }
  }
}`

func TestEnvelope_SubscriptionEvent(t *testing.T) {
	var env envelope
	require.NoError(t, json.Unmarshal([]byte(sampleSubscriptionEvent), &env))
	require.Equal(t, "evt_1ABC", env.ID)
	require.Equal(t, "customer.subscription.updated", env.Type)
	require.False(t, env.Livemode)

	var obj subscriptionObject
	require.NoError(t, json.Unmarshal(env.Data.Object, &obj))
	require.Equal(t, "sub_123", obj.ID)
	require.Equal(t, "cus_456", obj.Customer)
	require.Equal(t, "active", obj.Status)
	require.True(t, obj.CancelAtPeriodEnd)
	require.Nil(t, obj.CanceledAt)
}

func TestEnvelope_InvoiceEvent(t *testing.T) {
	var env envelope
	require.NoError(t, json.Unmarshal([]byte(sampleInvoiceEvent), &env))
	require.Equal(t, "invoice.paid", env.Type)
	require.True(t, env.Livemode)

	var obj invoiceObject
	require.NoError(t, json.Unmarshal(env.Data.Object, &obj))
	require.Equal(t, "in_789", obj.ID)
	require.Equal(t, "sub_123", obj.Subscription)
	require.Equal(t, int64(9900), obj.AmountPaid)
	require.Equal(t, "brl", obj.Currency)
}
