package email

// Templates HTML dos e-mails transacionais. Mantidos simples de propósito:
// clientes corporativos de e-mail quebram layouts elaborados.

const acessoTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 560px; margin: 0 auto;">
  <h2 style="color: #1a56db;">Bem-vindo(a) ao Enviagora Hub</h2>
  <p>Olá, <strong>%s</strong>!</p>
  <p>Seu acesso ao portal do colaborador foi criado. Use as credenciais abaixo para entrar:</p>
  <table style="border-collapse: collapse; margin: 16px 0;">
    <tr><td style="padding: 4px 12px 4px 0;"><strong>E-mail:</strong></td><td>%s</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;"><strong>Senha provisória:</strong></td><td><code>%s</code></td></tr>
  </table>
  <p>No primeiro acesso você deverá definir uma nova senha.</p>
  <p style="color: #6b7280; font-size: 12px;">Se você não esperava este e-mail, fale com o RH.</p>
</div>`

const redefinicaoTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 560px; margin: 0 auto;">
  <h2 style="color: #1a56db;">Redefinição de senha</h2>
  <p>Olá, <strong>%s</strong>!</p>
  <p>Recebemos um pedido para redefinir sua senha. O link abaixo vale por 1 hora:</p>
  <p style="margin: 24px 0;">
    <a href="%s" style="background: #1a56db; color: #fff; padding: 10px 20px; border-radius: 4px; text-decoration: none;">Redefinir senha</a>
  </p>
  <p style="color: #6b7280; font-size: 12px;">Se o botão não funcionar, copie e cole este endereço no navegador:<br>%s</p>
  <p style="color: #6b7280; font-size: 12px;">Se você não pediu a redefinição, ignore este e-mail.</p>
</div>`

const informativoTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 560px; margin: 0 auto;">
  <h2 style="color: #1a56db;">Novo informativo disponível</h2>
  <p>Olá, <strong>%s</strong>!</p>
  <p>A edição <strong>%s</strong> do informativo já está disponível no portal.</p>
  <p style="margin: 24px 0;">
    <a href="%s" style="background: #1a56db; color: #fff; padding: 10px 20px; border-radius: 4px; text-decoration: none;">Ler informativo</a>
  </p>
</div>`
