package mentor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/subject"
)

// All user-facing generation is in Brazilian Portuguese, matching the
// app's UI language.

func roadmapPrompt(subjectName string) string {
	return fmt.Sprintf(`Crie um roteiro de estudos conciso para a disciplina: %q. Quebre em 5 a 7 tópicos sequenciais para um estudante iniciante a intermediário. Mantenha os tópicos curtos e acionáveis. Responda APENAS em Português do Brasil.`, subjectName)
}

func moreTopicsPrompt(subjectName string, existing []string) string {
	existingJSON, _ := json.Marshal(existing)
	return fmt.Sprintf(`Atue como um professor especialista em %q.
O aluno já tem o seguinte roteiro de estudos:
%s

Gere 5 NOVOS tópicos sequenciais e mais avançados para continuar este roteiro.
Não repita tópicos.
Mantenha os títulos curtos e acionáveis.`, subjectName, existingJSON)
}

func lessonPrompt(subjectName, topic string) string {
	return fmt.Sprintf(`Atue como um AGENTE ESPECIALISTA E MENTOR na disciplina %q.

Sua Persona:
1. Escolha um nome para você (ex: "Teacher Sarah" se for inglês, "Eng. Atlas" se for física, "Designer Pixel" se for UX).
2. Adote um tom didático, empolgante e prático.

Sua tarefa é criar uma AULA DINÂMICA sobre o tópico: %q.

Retorne APENAS Markdown (sem HTML). Use exatamente esta estrutura:

# %s
*Com seu instrutor: {NOME_DA_SUA_PERSONA}*

## Introdução & Conceito

(explicação teórica profunda, em parágrafos, com **negrito** nos termos importantes)

## Aplicação Prática

(exemplos práticos, passo a passo, como isso funciona no mundo real)

> 💡 **Insight do Especialista:** (uma dica valiosa, um segredo ou um erro comum a evitar sobre %s)

## 🔑 Pontos Chave

- (3 a 4 bullet points curtos)

## ⚡ Desafio Rápido

(uma pequena pergunta ou exercício mental sobre o tema para fixar)

REGRAS GERAIS:
- O texto explicativo deve ser 100%% em Português do Brasil.
- Preencha os placeholders com conteúdo real e educativo.`, subjectName, topic, topic, topic)
}

func chatSystemPrompt(subjectName string) string {
	return fmt.Sprintf(`Você é um AGENTE ESPECIALISTA e MENTOR da disciplina %q.
Adote uma persona amigável, sábia e encorajadora (Ex: "Mestre dos Códigos" para TI, "Teacher" para inglês).
Responda ao aluno de forma educativa, curta e motivadora. Se ele pedir exercícios, dê um exemplo.
Responda em Português do Brasil.`, subjectName)
}

// chatContext renders the last turns of history the way the mentor
// prompt expects: "Aluno:" for the student, "Mentor:" for the mentor.
func chatContext(history []subject.ChatMessage, window int) string {
	if len(history) > window {
		history = history[len(history)-window:]
	}
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		label := "Mentor"
		if msg.Role == subject.RoleUser {
			label = "Aluno"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, msg.Text))
	}
	return strings.Join(lines, "\n")
}
