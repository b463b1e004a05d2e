package pages

import (
	"context"

	"github.com/a-h/templ"
)

const chatScript = `
const form = document.getElementById("chat-form");
const log = document.getElementById("chat-log");
const input = document.getElementById("chat-input");
function append(cls, text) {
  const p = document.createElement("p");
  p.className = cls;
  p.textContent = text;
  log.appendChild(p);
  log.scrollTop = log.scrollHeight;
}
form.addEventListener("submit", async (e) => {
  e.preventDefault();
  const message = input.value.trim();
  if (!message) return;
  append("user", message);
  input.value = "";
  try {
    const res = await fetch("/chat", {
      method: "POST",
      headers: {"Content-Type": "application/json"},
      body: JSON.stringify({message}),
    });
    const data = await res.json();
    append("bot", res.ok ? data.response : (data.error || "Something went wrong"));
  } catch (err) {
    append("bot", "Could not reach the assistant.");
  }
});
`

// ChatIndex is the chatbot's single page. It does not use Layout since the
// chat service has no sessions.
func ChatIndex() templ.Component {
	return body(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>MomHive Assistant</title>`)
		h.raw(`<link rel="stylesheet" href="/assets/css/style.css"></head><body>`)
		h.raw(`<main class="chat"><h1>MomHive Assistant</h1>`)
		h.raw(`<div id="chat-log" class="chat-log"></div>`)
		h.raw(`<form id="chat-form"><input id="chat-input" type="text" autocomplete="off" placeholder="Ask anything...">`)
		h.raw(`<button type="submit">Send</button></form></main>`)
		h.rawf(`<script nonce="%s">%s</script>`, esc(templ.GetNonce(ctx)), chatScript)
		h.raw(`</body></html>`)
	})
}
