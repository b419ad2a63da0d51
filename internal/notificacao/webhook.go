package notificacao

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
)

// EnviarWebhookAlerta avisa o webhook configurado sobre um nome de médico
// nunca visto antes. Como o vínculo repasse-médico é por texto livre, um
// nome novo pode ser um cadastro legítimo ou um erro de digitação.
func EnviarWebhookAlerta(nomeMedico string) {
	url := os.Getenv("WEBHOOK_ALERTA_URL")
	if url == "" {
		return
	}

	payload := map[string]string{
		"mensagem": "Alerta: repasse lançado para médico ainda não cadastrado",
		"medico":   nomeMedico,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		logrus.WithError(err).Warn("erro ao enviar webhook de alerta")
		return
	}
	defer resp.Body.Close()
}
